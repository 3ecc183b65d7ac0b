package catalog

import (
	"path/filepath"
	"strings"

	"github.com/bogem/id3v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/yeager/lugn/internal/model"
)

// maxConcurrentProbes bounds parallel tag reads during a scan.
const maxConcurrentProbes = 4

// enrichFromTags fills Title and Composer for discovered MP3 files
// from their ID3 frames (TIT2 for the title, TCOM for the composer).
// Files without readable tags keep their filename-derived titles; the
// probe is best-effort and never fails a scan.
func (c *Catalog) enrichFromTags(tracks []model.Track) {
	g := new(errgroup.Group)
	g.SetLimit(maxConcurrentProbes)

	for i := range tracks {
		if strings.ToLower(filepath.Ext(tracks[i].Path)) != ".mp3" {
			continue
		}

		track := &tracks[i]
		g.Go(func() error {
			title, composer, err := readTags(track.Path)
			if err != nil {
				c.logger.Debug("id3 probe failed",
					zap.String("path", track.Path),
					zap.Error(err))
				return nil
			}
			if title != "" {
				track.Title = title
			}
			if composer != "" {
				track.Composer = composer
			}
			return nil
		})
	}

	// Probe goroutines never return errors; Wait only synchronizes.
	_ = g.Wait()
}

// readTags reads the title and composer frames from an MP3 file.
func readTags(path string) (title, composer string, err error) {
	tag, err := id3v2.Open(path, id3v2.Options{
		Parse:       true,
		ParseFrames: []string{"TIT2", "TCOM"},
	})
	if err != nil {
		return "", "", err
	}
	defer tag.Close()

	title = strings.TrimSpace(tag.Title())
	composer = strings.TrimSpace(tag.GetTextFrame("TCOM").Text)
	return title, composer, nil
}
