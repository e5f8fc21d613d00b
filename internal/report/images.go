package report

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/foryougroup/field-reporter/internal/model"
)

// mimeByExt covers the image formats the pickers produce.
var mimeByExt = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".heic": "image/heic",
}

// ImageFromPath builds a report attachment from a local file path, deriving
// the upload name from the basename and the MIME type from the extension.
// Unknown extensions default to JPEG, matching the mobile picker.
func ImageFromPath(path string) model.ReportImage {
	name := filepath.Base(path)
	if name == "." || name == string(filepath.Separator) || name == "" {
		name = fmt.Sprintf("image_%d.jpg", time.Now().UnixMilli())
	}
	mime, ok := mimeByExt[strings.ToLower(filepath.Ext(path))]
	if !ok {
		mime = "image/jpeg"
	}
	return model.ReportImage{URI: path, Name: name, Type: mime}
}
