package view

import (
	"fmt"

	"github.com/maheshrc27/crosspost/internal/models"
)

type FileRow struct {
	Name string
	Icon string
	Size string
}

type FileList struct {
	Visible bool
	Rows    []FileRow
}

func NewFileList(files []*models.UploadedFile) FileList {
	list := FileList{Visible: len(files) > 0}
	for _, f := range files {
		icon := "fa-image"
		if f.Kind == models.MediaKindVideo {
			icon = "fa-video"
		}
		list.Rows = append(list.Rows, FileRow{
			Name: f.Name,
			Icon: icon,
			Size: FormatMegabytes(f.Size),
		})
	}
	return list
}

func FormatMegabytes(size int64) string {
	return fmt.Sprintf("%.2f MB", float64(size)/1024/1024)
}
