package view

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/soocke/imagecrop-go/domain/imageio"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Dialogs implements the presenter's modal interactions with native Tk dialogs.
type Dialogs struct {
	logger  *slog.Logger
	lastDir string // directory of the last opened file, for this run only
}

// NewDialogs returns Tk-backed dialogs.
func NewDialogs(logger *slog.Logger) *Dialogs { return &Dialogs{logger: logger} }

func fileTypes(types []imageio.FileType) []FileType {
	out := make([]FileType, 0, len(types))
	for _, t := range types {
		out = append(out, FileType{TypeName: t.Name, Extensions: t.Extensions})
	}
	return out
}

// OpenImage shows the file-open dialog.
func (d *Dialogs) OpenImage() (string, bool) {
	opts := []Opt{Title("Load Image"), Filetypes(fileTypes(imageio.OpenFileTypes()))}
	if d.lastDir != "" {
		opts = append(opts, Initialdir(d.lastDir))
	}
	files := GetOpenFile(opts...)
	if len(files) == 0 || strings.TrimSpace(files[0]) == "" {
		return "", false
	}
	d.lastDir = filepath.Dir(files[0])
	return files[0], true
}

// SaveImage shows the file-save dialog with suggested as the initial file name.
func (d *Dialogs) SaveImage(suggested string) (string, bool) {
	opts := []Opt{
		Title("Save Cropped Image"),
		Defaultextension(imageio.DefaultExtension),
		Filetypes(fileTypes(imageio.SaveFileTypes())),
		Confirmoverwrite(true),
	}
	if suggested != "" {
		opts = append(opts, Initialfile(suggested))
	}
	if d.lastDir != "" {
		opts = append(opts, Initialdir(d.lastDir))
	}
	path := strings.TrimSpace(GetSaveFile(opts...))
	return path, path != ""
}

func (d *Dialogs) Warn(msg string)  { d.message("warning", "Warning", msg) }
func (d *Dialogs) Error(msg string) { d.message("error", "Error", msg) }
func (d *Dialogs) Info(msg string)  { d.message("info", "Success", msg) }

func (d *Dialogs) message(icon, title, msg string) {
	if d.logger != nil {
		d.logger.Debug("message box", "icon", icon, "msg", msg)
	}
	MessageBox(Icon(icon), Title(title), Msg(msg), Type("ok"))
}
