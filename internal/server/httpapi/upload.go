package httpapi

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/foliovault/internal/filex"
	"github.com/google/uuid"
)

// maxUploadSize caps each uploaded file at 10 MiB.
const maxUploadSize = 10 << 20

var allowedUploadTypes = map[string]struct{}{
	"image/jpeg":      {},
	"image/png":       {},
	"image/webp":      {},
	"image/gif":       {},
	"application/pdf": {},
	"text/plain":      {},
}

type uploadedFile struct {
	URL      string `json:"url"`
	Pathname string `json:"pathname"`
	Size     int64  `json:"size"`
}

// handleUpload stores multipart files under the uploads directory with
// generated names, keeping only the original extension. Any invalid
// file rejects the whole request before anything is written.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize*4)

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid multipart request")
		return
	}

	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		respondError(w, http.StatusBadRequest, "No files provided")
		return
	}

	for _, fh := range files {
		contentType := fh.Header.Get("Content-Type")
		if _, ok := allowedUploadTypes[contentType]; !ok {
			respondError(w, http.StatusBadRequest, fmt.Sprintf("File type %s not allowed", contentType))
			return
		}
		if fh.Size > maxUploadSize {
			respondError(w, http.StatusBadRequest, fmt.Sprintf("File %s exceeds size limit of 10MB", fh.Filename))
			return
		}
	}

	if _, err := filex.EnsureDir(s.cfg.UploadsDir); err != nil {
		s.log.Error(r.Context(), "uploads dir creation failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to store files")
		return
	}

	uploaded := make([]uploadedFile, 0, len(files))
	for _, fh := range files {
		name := uuid.NewString() + filepath.Ext(fh.Filename)

		src, err := fh.Open()
		if err != nil {
			s.log.Error(r.Context(), "upload open failed", "error", err)
			respondError(w, http.StatusInternalServerError, "Failed to store files")
			return
		}

		dst, err := os.OpenFile(filepath.Join(s.cfg.UploadsDir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o660)
		if err != nil {
			_ = src.Close()
			s.log.Error(r.Context(), "upload create failed", "error", err)
			respondError(w, http.StatusInternalServerError, "Failed to store files")
			return
		}

		_, err = io.Copy(dst, src)
		_ = src.Close()
		if cerr := dst.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			s.log.Error(r.Context(), "upload write failed", "error", err)
			respondError(w, http.StatusInternalServerError, "Failed to store files")
			return
		}

		uploaded = append(uploaded, uploadedFile{
			URL:      "/uploads/" + name,
			Pathname: name,
			Size:     fh.Size,
		})
	}

	respondMessage(w, http.StatusOK, uploaded, "Files uploaded successfully")
}
