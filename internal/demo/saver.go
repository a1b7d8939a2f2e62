package demo

import (
	"fmt"
	"path/filepath"
	"time"

	"frender/pkg/api"
	"frender/pkg/codec"
	"frender/pkg/raster"
)

// FileSaver returns a Switcher.Save function writing frames into dir as
// frender-<demo>-<timestamp>.<ext>.
func FileSaver(dir string, format codec.Format) func(name string, c *raster.Canvas) error {
	if format == "" {
		format = codec.PNG
	}
	return func(name string, c *raster.Canvas) error {
		path := filepath.Join(dir, fmt.Sprintf("frender-%s-%s.%s", name, time.Now().Format("20060102-150405.000"), format))
		export := api.DefaultExportOptions()
		export.Format = format
		export.Title = name
		return api.Export(path, c, export)
	}
}
