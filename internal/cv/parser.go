package cv

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"code.sajari.com/docconv"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrUnsupportedFile is returned for uploads docconv cannot read.
var ErrUnsupportedFile = errors.New("unsupported file type")

// Parser turns uploaded résumé or transcript files into plain text.
type Parser struct {
	uploadsDir string
}

// Upload is a stored upload and the text read from it.
type Upload struct {
	Filename string
	Path     string
	FileType string
	FileSize int64
	Text     string
}

func NewParser(uploadsDir string) *Parser {
	return &Parser{
		uploadsDir: uploadsDir,
	}
}

// ParseFile stores the upload and extracts its text. PDF, Word, RTF and ODT
// go through docconv; .txt is read as is.
func (p *Parser) ParseFile(filename string, reader io.Reader) (*Upload, error) {
	name := filepath.Base(filename)
	fileType := strings.ToLower(filepath.Ext(name))
	switch fileType {
	case ".pdf", ".docx", ".doc", ".rtf", ".odt", ".txt":
	default:
		return nil, errors.Wrapf(ErrUnsupportedFile, "%q", fileType)
	}

	if err := os.MkdirAll(p.uploadsDir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create uploads dir")
	}
	// Uploads with the same name must not overwrite each other.
	path := filepath.Join(p.uploadsDir, uuid.NewString()+"-"+name)

	file, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(err, "create upload file")
	}
	size, err := io.Copy(file, reader)
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return nil, errors.Wrap(err, "save upload")
	}

	var text string
	if fileType == ".txt" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "read text file")
		}
		text = string(raw)
	} else {
		res, err := docconv.ConvertPath(path)
		if err != nil {
			return nil, errors.Wrap(err, "convert document")
		}
		text = res.Body
	}

	return &Upload{
		Filename: name,
		Path:     path,
		FileType: fileType,
		FileSize: size,
		Text:     strings.TrimSpace(text),
	}, nil
}
