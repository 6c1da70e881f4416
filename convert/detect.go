package convert

import (
	"archive/zip"
	"bytes"
	"io"

	"github.com/h2non/filetype"

	"ttc/archive"
)

const sniffLen = 512

var boms = [][]byte{
	{0xEF, 0xBB, 0xBF},
	{0xFE, 0xFF},
	{0xFF, 0xFE},
}

func isArchiveFile(path string) (bool, error) {
	kind, err := filetype.MatchFile(path)
	if err != nil {
		return false, err
	}
	return kind != filetype.Unknown && kind.Extension == "zip", nil
}

// isDocument checks name extension and that content looks like XML.
func isDocument(name string, r io.Reader) (bool, error) {
	if !archive.IsDocument(name) {
		return false, nil
	}
	buf := make([]byte, sniffLen)
	n, err := io.ReadFull(r, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return false, err
	}
	return looksLikeXML(buf[:n]), nil
}

func isDocumentInArchive(f *zip.File) (bool, error) {
	r, err := f.Open()
	if err != nil {
		return false, err
	}
	defer r.Close()
	return isDocument(f.Name, r)
}

func looksLikeXML(head []byte) bool {
	for _, bom := range boms {
		if bytes.HasPrefix(head, bom) {
			if len(bom) == 2 {
				// UTF-16, leave detailed checks to the parser
				return true
			}
			head = head[len(bom):]
			break
		}
	}
	head = bytes.TrimLeft(head, " \t\r\n")
	return len(head) > 0 && head[0] == '<'
}
