package convert

import (
	"encoding/json"
	"fmt"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

const schema = `
CREATE TABLE document (
	source          TEXT NOT NULL,
	lang            TEXT NOT NULL,
	profile         TEXT NOT NULL,
	viewport_width  INTEGER NOT NULL,
	viewport_height INTEGER NOT NULL,
	cell_columns    INTEGER NOT NULL,
	cell_rows       INTEGER NOT NULL,
	frame_rate      REAL
);
CREATE TABLE cues (
	seq             INTEGER PRIMARY KEY,
	id              TEXT NOT NULL,
	start_time      REAL NOT NULL,
	end_time        REAL NOT NULL,
	text            TEXT,
	content         TEXT,
	paragraph_style TEXT NOT NULL,
	text_style      TEXT NOT NULL,
	region_style    TEXT NOT NULL,
	show_background INTEGER NOT NULL,
	image_mime      TEXT,
	image_width     INTEGER,
	image_height    INTEGER,
	image_src       TEXT
);
CREATE INDEX cues_time ON cues(start_time, end_time);
`

// writeSQLite stores document as database with one row per cue, cue content
// is kept as JSON.
func writeSQLite(path string, doc *Document) (err error) {
	conn, err := sqlite.OpenConn(path, sqlite.OpenReadWrite, sqlite.OpenCreate)
	if err != nil {
		return fmt.Errorf("unable to create database: %w", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("unable to close database: %w", cerr)
		}
	}()

	if err := sqlitex.ExecuteScript(conn, schema, nil); err != nil {
		return fmt.Errorf("unable to create schema: %w", err)
	}
	return insertDocument(conn, doc)
}

func insertDocument(conn *sqlite.Conn, doc *Document) (err error) {
	defer sqlitex.Save(conn)(&err)

	err = sqlitex.Execute(conn,
		`INSERT INTO document (source, lang, profile, viewport_width, viewport_height, cell_columns, cell_rows, frame_rate)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		&sqlitex.ExecOptions{Args: []any{
			doc.Source, doc.Lang, doc.Profile,
			doc.Viewport.Width, doc.Viewport.Height,
			doc.CellResolution.Width, doc.CellResolution.Height,
			doc.FrameRate,
		}})
	if err != nil {
		return fmt.Errorf("unable to store document: %w", err)
	}

	for i, c := range doc.Cues {
		var content, mime, data any
		var width, height any
		if len(c.Content) > 0 {
			raw, err := json.Marshal(c.Content)
			if err != nil {
				return fmt.Errorf("unable to encode content of cue %s: %w", c.ID, err)
			}
			content = string(raw)
		}
		if c.Image != nil {
			mime, width, height, data = c.Image.MIME, c.Image.Width, c.Image.Height, c.Image.Src
		}
		err = sqlitex.Execute(conn,
			`INSERT INTO cues (seq, id, start_time, end_time, text, content, paragraph_style, text_style, region_style,
			                   show_background, image_mime, image_width, image_height, image_src)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			&sqlitex.ExecOptions{Args: []any{
				i, c.ID, c.Start, c.End, c.Text, content,
				c.ParagraphStyle, c.TextStyle, c.RegionStyle, c.ShowBackground,
				mime, width, height, data,
			}})
		if err != nil {
			return fmt.Errorf("unable to store cue %s: %w", c.ID, err)
		}
	}
	return nil
}
