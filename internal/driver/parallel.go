package driver

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"slices"
	"sort"
	"strconv"

	"golang.org/x/sync/errgroup"

	"xdoc/internal/diag"
	"xdoc/internal/source"
	"xdoc/internal/trace"
)

// listFiles возвращает отсортированный список файлов с нужными расширениями
func listFiles(dir string, exts []string) ([]string, error) {
	if len(exts) == 0 {
		exts = []string{".cs"}
	}
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			// скрытые каталоги (.git, .vs) не обходим
			if path != dir && len(d.Name()) > 1 && d.Name()[0] == '.' {
				return filepath.SkipDir
			}
			return nil
		}
		if slices.Contains(exts, filepath.Ext(path)) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// ScanDir сканирует все подходящие файлы в директории параллельно.
// Ошибки загрузки отдельных файлов становятся диагностиками IOLoadFileError.
func ScanDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []FileResult, error) {
	ctx, span := trace.Start(ctx, trace.ScopePass, "scan-dir")
	defer span.End(dir)

	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, nil, err
	}
	listPhase := opts.Timer.Begin("list")
	files, err := listFiles(dir, opts.Extensions)
	if err != nil {
		return nil, nil, err
	}
	opts.Timer.End(listPhase, fmt.Sprintf("%d files", len(files)))
	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	// FileSet не потокобезопасен: загружаем последовательно
	loadPhase := opts.Timer.Begin("load")
	fileIDs := make([]source.FileID, len(files))
	loadErrors := make(map[int]error)
	for i, path := range files {
		fileID, err := fileSet.Load(path, source.LoadOptions{NormalizeNFC: opts.NormalizeNFC})
		if err != nil {
			loadErrors[i] = err
			// пустой виртуальный файл, чтобы диагностике было на что указывать
			fileID = fileSet.AddVirtual(path, nil)
		}
		fileIDs[i] = fileID
	}

	opts.Timer.End(loadPhase, "")

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]FileResult, len(files))

	scanPhase := opts.Timer.Begin("scan")
	defer opts.Timer.End(scanPhase, fmt.Sprintf("%d jobs", jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			file := fileSet.Get(fileIDs[i])
			if loadErr, failed := loadErrors[i]; failed {
				bag := diag.NewBag(opts.MaxDiagnostics)
				bag.Add(diag.NewError(diag.IOLoadFileError, source.At(file.ID, 0), "failed to load file: "+loadErr.Error()))
				results[i] = FileResult{Path: file.Path, FileID: file.ID, Bag: bag}
				return nil
			}
			res, err := scanLoaded(gctx, file, opts)
			if err != nil {
				return err
			}
			results[i] = *res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	span.WithExtra("files", strconv.Itoa(len(files)))
	return fileSet, results, nil
}

// MergeBags собирает диагностики всех файлов в один отсортированный Bag.
func MergeBags(results []FileResult) *diag.Bag {
	out := diag.NewBag(0)
	for _, r := range results {
		if r.Bag != nil {
			out.Merge(r.Bag)
		}
	}
	out.Sort()
	return out
}
