package downloader

import (
	"fmt"
	"os"

	"github.com/wuihee/c-rust-program-pairs/config"
)

// Delete removes the staged program pairs and the clone cache. Missing
// directories are not an error.
func Delete(cfg config.Config) error {
	for _, dir := range []string{cfg.PairsDir, cfg.ClonesDir} {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			continue
		}
		if err := os.RemoveAll(dir); err != nil {
			return fmt.Errorf("failed to remove %s: %w", dir, err)
		}
	}
	return nil
}
