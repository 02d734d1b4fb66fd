package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"xdoc/internal/token"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB — ограничение для тестового корпуса
)

// nameSeeds — значения атрибута name, покрывающие все ветки разбора.
var nameSeeds = []string{
	"A", "int", "", " ", "A.B", "A{T}", ".",
	"@class", "@", "@1", "_x1", "1a", "\tname\n", "a b c", "<", "\"", "é", "́a", "\xff",
}

// docSeeds — блоки doc-комментариев для xmldoc.Scan.
var docSeeds = []string{
	"/// <param name=\"x\"/>\n",
	"/// <summary>Uses <paramref name=\"a\"/>.</summary>\n/// <param name=\"a\">text</param>\n",
	"/// <param name=x/>",
	"/// <param name \"x\"/>",
	"/// <param name=\"x\n/// />",
	"/// <param name=\"x\" <b/>",
	"/// </para>",
	"/// <para>",
	"/// <!-- <param name=\"\"/> ",
	"//// <param name=\".\"/>\n",
	"  /// <typeparam name='T'>\n  /// </typeparam>\r\n",
}

func addNameSeeds(f *testing.F) {
	for _, s := range nameSeeds {
		f.Add(s)
	}
	for _, kw := range token.Keywords() {
		f.Add(kw.String())
	}
}

func addDocSeeds(f *testing.F) {
	for _, s := range docSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.cs файлы
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".cs" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
