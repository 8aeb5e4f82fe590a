package handler

import (
	"encoding/json"
	"food-storefront/common"
	"io"
	"net/http"
	"strconv"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeImage(w http.ResponseWriter, image []byte) {
	w.Header().Set("Content-Type", http.DetectContentType(image))
	w.Header().Set("Content-Length", strconv.Itoa(len(image)))
	w.WriteHeader(http.StatusOK)
	w.Write(image)
}

func pathID(r *http.Request, name string) (int, *common.AppError) {
	id, err := strconv.Atoi(r.PathValue(name))
	if err != nil || id <= 0 {
		return 0, common.NewAppError(http.StatusBadRequest, "Invalid "+name+" in URL path", err)
	}
	return id, nil
}

// parseMultipart reads a multipart body of at most maxBytes of file data.
func parseMultipart(r *http.Request, maxBytes int64) *common.AppError {
	if maxBytes <= 0 {
		maxBytes = 5 << 20
	}
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid multipart form", err)
	}
	return nil
}

// formFile returns the bytes of an uploaded file, or nil when the field is
// absent or empty.
func formFile(r *http.Request, field string, maxBytes int64) ([]byte, *common.AppError) {
	file, header, err := r.FormFile(field)
	if err == http.ErrMissingFile {
		return nil, nil
	}
	if err != nil {
		return nil, common.NewAppError(http.StatusBadRequest, "Could not read "+field, err)
	}
	defer file.Close()

	if maxBytes > 0 && header.Size > maxBytes {
		return nil, common.NewAppError(http.StatusRequestEntityTooLarge, "Image exceeds the upload limit", nil)
	}
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, common.NewAppError(http.StatusBadRequest, "Could not read "+field, err)
	}
	return data, nil
}
