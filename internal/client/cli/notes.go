package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Notes fetches and prints the user's study materials.
func (a *App) Notes(ctx context.Context) error {
	entries, err := a.api.Notes(ctx)
	if err != nil {
		a.logger.Warn(ctx, "listing notes failed", "error", err.Error())
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(a.out, "No notes yet. Your uploaded study materials will appear here.")
		return nil
	}

	for _, e := range entries {
		title := e.Note.Title
		if title == "" {
			title = e.Note.FileName
		}
		fmt.Fprintf(a.out, "%s  %s  %.1f MB  %s\n  %s\n",
			e.Note.ID, title, float64(e.Note.FileSize)/1048576.0, e.Note.CreatedAt, e.DownloadURL)
	}
	return nil
}

// Upload sends one local file to the backend. The title is prompted; empty
// input falls back to the file name.
func (a *App) Upload(ctx context.Context) error {
	path, err := getSimpleText(a.reader, "Enter file path", a.out)
	if err != nil {
		return err
	}
	title, err := getSimpleText(a.reader, "Enter title (empty for file name)", a.out)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintln(a.out, "cannot open file:", err.Error())
		return err
	}
	defer f.Close()

	filename := filepath.Base(path)
	if title == "" {
		title = filename
	}

	entry, err := a.api.UploadNote(ctx, title, filename, f)
	if err != nil {
		a.logger.Warn(ctx, "upload failed", "error", err.Error())
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Uploaded %s (%d bytes)\n  %s\n",
		entry.Note.FileName, entry.Note.FileSize, entry.DownloadURL)
	return nil
}
