// Package convert implements compile and inspect commands: it locates TTML
// documents in files, directories and zip archives, compiles them and stores
// results in requested format.
package convert

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime/debug"
	"slices"
	"strings"
	"time"

	"github.com/maruel/natural"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"ttc/archive"
	"ttc/common"
	"ttc/state"
	"ttc/ttml"
)

func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("compile")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	if src, err = filepath.Abs(src); err != nil {
		return err
	}

	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		if dst, err = os.Getwd(); err != nil {
			return fmt.Errorf("unable to get working directory: %w", err)
		}
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return err
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Mailformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	format := env.Cfg.Output.Format
	if to := cmd.String("to"); len(to) > 0 {
		if format, err = common.ParseOutputFmt(to); err != nil {
			return fmt.Errorf("unknown output format requested: %w", err)
		}
	}

	env.NoDirs, env.Overwrite = cmd.Bool("nodirs"), cmd.Bool("overwrite")

	compiler, err := env.NewCompiler()
	if err != nil {
		return err
	}

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst), zap.Stringer("format", format))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	p := &processor{env: env, compiler: compiler, format: format, dst: dst, log: log}
	return p.process(ctx, src)
}

// processor carries everything needed to handle single compile request.
type processor struct {
	env      *state.LocalEnv
	compiler *ttml.Compiler
	format   common.OutputFmt
	dst      string
	log      *zap.Logger

	count int
}

// process determines whether source is directory, archive (possibly with
// path inside it) or single document and handles it accordingly.
func (p *processor) process(ctx context.Context, src string) error {
	var head, tail string
	for head = src; len(head) != 0; head, tail = filepath.Split(head) {
		if err := ctx.Err(); err != nil {
			return err
		}

		head = strings.TrimSuffix(head, string(filepath.Separator))

		fi, err := os.Stat(head)
		if err != nil {
			// does not exists - probably path in archive
			continue
		}

		if fi.Mode().IsDir() {
			if len(tail) != 0 {
				// directory cannot have tail - it would be simple file
				return fmt.Errorf("input source was not found (%s) => (%s)", head, strings.TrimPrefix(src, head))
			}
			if err := p.processDir(ctx, head); err != nil {
				return fmt.Errorf("unable to process directory: %w", err)
			}
			break
		}

		if !fi.Mode().IsRegular() {
			return fmt.Errorf("unexpected path mode for (%s) => (%s)", head, strings.TrimPrefix(src, head))
		}

		isArchive, err := isArchiveFile(head)
		if err != nil {
			return fmt.Errorf("unable to check archive type: %w", err)
		}
		if isArchive {
			// we need to look inside to see if path makes sense
			tail = filepath.ToSlash(strings.TrimPrefix(strings.TrimPrefix(src, head), string(filepath.Separator)))
			if err := p.processArchive(ctx, head, tail, ""); err != nil {
				return fmt.Errorf("unable to process archive: %w", err)
			}
			break
		}

		if len(tail) != 0 {
			return fmt.Errorf("input source was not found (%s) => (%s)", head, strings.TrimPrefix(src, head))
		}
		data, err := os.ReadFile(head)
		if err != nil {
			return err
		}
		doc, err := isDocument(head, bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("unable to check file type: %w", err)
		}
		if !doc {
			return fmt.Errorf("input was not recognized as TTML document (%s)", head)
		}
		return p.processDocument(ctx, data, filepath.Base(head))
	}
	if len(head) == 0 {
		return fmt.Errorf("input source was not found (%s)", src)
	}
	return nil
}

// processDir compiles every document and archive found under dir in natural
// name order. Failures do not stop processing and are reported together.
func (p *processor) processDir(ctx context.Context, dir string) (err error) {
	var paths []string
	walkErr := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err != nil {
			p.log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if d.Type().IsRegular() {
			paths = append(paths, path)
		}
		return nil
	})
	if walkErr != nil {
		return walkErr
	}
	slices.SortStableFunc(paths, naturalCompare)

	count := p.count
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}
		rel := strings.TrimPrefix(strings.TrimPrefix(path, dir), string(filepath.Separator))

		isArchive, aerr := isArchiveFile(path)
		if aerr != nil {
			p.log.Warn("Skipping file", zap.String("file", path), zap.Error(aerr))
			continue
		}
		if isArchive {
			if perr := p.processArchive(ctx, path, "", filepath.Dir(rel)); perr != nil {
				p.log.Error("Unable to process archive", zap.String("file", path), zap.Error(perr))
				err = multierr.Append(err, fmt.Errorf("%s: %w", rel, perr))
			}
			continue
		}

		data, rerr := os.ReadFile(path)
		if rerr != nil {
			p.log.Warn("Skipping file", zap.String("file", path), zap.Error(rerr))
			continue
		}
		if ok, _ := isDocument(path, bytes.NewReader(data)); !ok {
			p.log.Debug("Skipping file, not recognized as document or archive", zap.String("file", path))
			continue
		}
		if perr := p.processDocument(ctx, data, rel); perr != nil {
			p.log.Error("Unable to process file", zap.String("file", path), zap.Error(perr))
			err = multierr.Append(err, fmt.Errorf("%s: %w", rel, perr))
		}
	}
	if err == nil && count == p.count {
		p.log.Debug("Nothing to process", zap.String("dir", dir))
	}
	return err
}

// processArchive compiles documents inside archive located under pathIn.
// pathOut is archive location relative to processed directory.
func (p *processor) processArchive(ctx context.Context, path, pathIn, pathOut string) (err error) {
	count := p.count
	walkErr := archive.Walk(path, pathIn, func(name string, f *zip.File) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		ok, derr := isDocumentInArchive(f)
		if derr != nil {
			p.log.Warn("Skipping file in archive", zap.String("archive", name), zap.String("path", f.Name), zap.Error(derr))
			return nil
		}
		if !ok {
			p.log.Debug("Skipping file, not recognized as document", zap.String("archive", name), zap.String("file", f.Name))
			return nil
		}

		data, rerr := readZipFile(f)
		if rerr != nil {
			p.log.Error("Unable to process file in archive", zap.String("archive", name), zap.String("file", f.Name), zap.Error(rerr))
			err = multierr.Append(err, fmt.Errorf("%s: %w", f.Name, rerr))
			return nil
		}
		if perr := p.processDocument(ctx, data, filepath.Join(pathOut, filepath.FromSlash(f.Name))); perr != nil {
			p.log.Error("Unable to process file in archive", zap.String("archive", name), zap.String("file", f.Name), zap.Error(perr))
			err = multierr.Append(err, fmt.Errorf("%s: %w", f.Name, perr))
		}
		return nil
	})
	if walkErr != nil {
		return multierr.Append(walkErr, err)
	}
	if err == nil && count == p.count {
		p.log.Debug("Nothing to process", zap.String("archive", path))
	}
	return err
}

// processDocument compiles single document. "src" is source path relative to
// the original request: base file name for single file, relative path for
// documents found in directories and archives.
func (p *processor) processDocument(ctx context.Context, data []byte, src string) (rerr error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.count++

	var outputName string
	var cues int

	p.log.Info("Compilation starting", zap.String("from", src))
	defer func(start time.Time) {
		// image decoders are not always robust, one bad document should not
		// stop the batch
		if r := recover(); r != nil {
			p.log.Error("Compilation ended with panic",
				zap.Any("panic", r), zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName), zap.ByteString("stack", debug.Stack()))
			rerr = fmt.Errorf("compilation panic: %v", r)
		} else if rerr == nil {
			p.log.Info("Compilation completed", zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName), zap.Int("cues", cues))
		}
	}(time.Now())

	base := filepath.Base(src)
	p.env.Rpt.StoreData(fmt.Sprintf("%03d-source-%s", p.count, base), data)

	doc, err := p.compiler.CompileDocument(bytes.NewReader(data), p.env.Viewport())
	if err != nil {
		return fmt.Errorf("unable to compile (%s): %w", src, err)
	}
	cues = len(doc.Cues)

	outputName = buildOutputPath(doc, src, p.dst, p.format, p.env)

	if _, err := os.Stat(outputName); err == nil {
		if !p.env.Overwrite {
			return fmt.Errorf("output file already exists: %s", outputName)
		}
		p.log.Warn("Overwriting existing file", zap.String("file", outputName))
		if err = os.Remove(outputName); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	} else if err := os.MkdirAll(filepath.Dir(outputName), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}

	if err := writeOutput(outputName, newDocument(doc, filepath.ToSlash(src)), p.format, p.env.Cfg.Output.Indent); err != nil {
		return err
	}

	if err := p.env.Rpt.StoreCopy(fmt.Sprintf("%03d-result-%s", p.count, filepath.Base(outputName)), outputName); err != nil {
		p.log.Warn("Unable to store result in report", zap.Error(err))
	}
	return nil
}

func readZipFile(f *zip.File) ([]byte, error) {
	r, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

func naturalCompare(a, b string) int {
	switch {
	case natural.Less(a, b):
		return -1
	case natural.Less(b, a):
		return 1
	}
	return 0
}
