package report

import (
	"fmt"
	"strings"
	"time"
)

// artifactTimeFormat orders filenames chronologically.
const artifactTimeFormat = "20060102_150405"

// ArtifactName returns a timestamped report filename like
// "statements_20260331_170210.csv".
func ArtifactName(prefix, ext string, t time.Time) string {
	return fmt.Sprintf("%s_%s.%s", prefix, t.Format(artifactTimeFormat), strings.TrimPrefix(ext, "."))
}

// ParseArtifactTime recovers the timestamp from an artifact name.
func ParseArtifactTime(name string) (time.Time, error) {
	base := name
	if i := strings.LastIndex(base, "."); i >= 0 {
		base = base[:i]
	}
	parts := strings.Split(base, "_")
	if len(parts) < 3 {
		return time.Time{}, fmt.Errorf("invalid artifact name: %q", name)
	}
	stamp := parts[len(parts)-2] + "_" + parts[len(parts)-1]
	t, err := time.Parse(artifactTimeFormat, stamp)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp in artifact name %q: %w", name, err)
	}
	return t, nil
}
