// Package noglobalclient запрещает глобальный HTTP-клиент из net/http.
// Исходящие запросы должны идти через внедрённый httpclient.Client,
// у которого настроены пул соединений и политика повторов.
package noglobalclient

import (
	"go/ast"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
)

var Analyzer = &analysis.Analyzer{
	Name: "noglobalclient",
	Doc:  "запрещает http.DefaultClient и функции http.Get, http.Head, http.Post, http.PostForm",
	Run:  run,
}

var forbidden = map[string]bool{
	"net/http.DefaultClient": true,
	"net/http.Get":           true,
	"net/http.Head":          true,
	"net/http.Post":          true,
	"net/http.PostForm":      true,
}

func run(pass *analysis.Pass) (interface{}, error) {
	for _, file := range pass.Files {
		if strings.HasSuffix(pass.Fset.File(file.Pos()).Name(), "_test.go") {
			continue
		}

		ast.Inspect(file, func(n ast.Node) bool {
			sel, ok := n.(*ast.SelectorExpr)
			if !ok {
				return true
			}

			obj := pass.TypesInfo.Uses[sel.Sel]
			if obj == nil || obj.Pkg() == nil || obj.Pkg().Path() != "net/http" {
				return true
			}
			// методы (*http.Client).Get и поля структур не трогаем
			switch o := obj.(type) {
			case *types.Var:
				if o.IsField() {
					return true
				}
			case *types.Func:
				if o.Type().(*types.Signature).Recv() != nil {
					return true
				}
			default:
				return true
			}

			name := "net/http." + obj.Name()
			if forbidden[name] {
				pass.Reportf(sel.Pos(), "используйте httpclient.Client вместо http.%s", obj.Name())
			}
			return true
		})
	}
	return nil, nil
}
