package backend

import (
	"bytes"
	"compress/flate"
	"context"
	"encoding/base64"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz-_"

var encoding = base64.NewEncoding(alphabet).WithPadding(base64.NoPadding)

// Server renders markup with a PlantUML server
type Server struct {
	URL    string
	Format string
	client *http.Client
}

// NewServer creates a server backend
func NewServer(URL string, format string, timeout time.Duration) *Server {
	if format == "" {
		format = "png"
	}
	return &Server{
		URL:    strings.TrimRight(URL, "/"),
		Format: format,
		client: &http.Client{Timeout: timeout},
	}
}

// Encode compresses and encodes markup the way PlantUML server expects it in the URL path
func Encode(markup string) (string, error) {
	buf := &bytes.Buffer{}
	writer, err := flate.NewWriter(buf, flate.BestCompression)
	if err != nil {
		return "", err
	}
	if _, err = writer.Write([]byte(markup)); err != nil {
		return "", err
	}
	if err = writer.Close(); err != nil {
		return "", err
	}
	return encoding.EncodeToString(buf.Bytes()), nil
}

// Decode reverses Encode
func Decode(encoded string) (string, error) {
	data, err := encoding.DecodeString(encoded)
	if err != nil {
		return "", err
	}
	reader := flate.NewReader(bytes.NewReader(data))
	defer reader.Close()
	markup, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	return string(markup), nil
}

func (s *Server) Render(ctx context.Context, markup string) ([]byte, error) {
	encoded, err := Encode("@startuml\n" + markup + "\n@enduml\n")
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode diagram")
	}
	URL := s.URL + "/" + s.Format + "/" + encoded
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, URL, nil)
	if err != nil {
		return nil, err
	}
	response, err := s.client.Do(request)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to render diagram with %v", s.URL)
	}
	defer response.Body.Close()
	data, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read diagram from %v", s.URL)
	}
	if response.StatusCode != http.StatusOK {
		return nil, errors.Errorf("failed to render diagram with %v: status %v", s.URL, response.StatusCode)
	}
	return data, nil
}
