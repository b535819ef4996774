// Package noexit следит, чтобы процесс завершался только из main.
//
// В функции main пакета main запрещён os.Exit: сервер выходит через
// logger.Fatal или возврат из main, и отрабатывают defer (logger.Sync,
// закрытие пула соединений). В остальных пакетах запрещены любые способы
// завершить процесс: os.Exit, log.Fatal*, Fatal-методы логгеров zap.
// Обработчик или репозиторий должен вернуть ошибку, а не ронять сервер
// посреди чужого запроса.
package noexit

import (
	"go/ast"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
)

var Analyzer = &analysis.Analyzer{
	Name: "noexit",
	Doc:  "запрещает os.Exit в main и завершение процесса (os.Exit, log.Fatal, zap Fatal) вне пакета main",
	Run:  run,
}

// exits перечисляет функции, завершающие процесс.
var exits = map[string]bool{
	"os.Exit":     true,
	"log.Fatal":   true,
	"log.Fatalf":  true,
	"log.Fatalln": true,

	"(*go.uber.org/zap.Logger).Fatal":          true,
	"(*go.uber.org/zap.SugaredLogger).Fatal":   true,
	"(*go.uber.org/zap.SugaredLogger).Fatalf":  true,
	"(*go.uber.org/zap.SugaredLogger).Fatalw":  true,
	"(*go.uber.org/zap.SugaredLogger).Fatalln": true,
}

func run(pass *analysis.Pass) (interface{}, error) {
	isMain := pass.Pkg.Name() == "main"

	for _, file := range pass.Files {
		if strings.HasSuffix(pass.Fset.File(file.Pos()).Name(), "_test.go") {
			continue
		}

		for _, decl := range file.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok || fn.Body == nil {
				continue
			}
			if isMain {
				if fn.Name.Name == "main" && fn.Recv == nil {
					checkMain(pass, fn.Body)
				}
				continue
			}
			checkLibrary(pass, fn.Body)
		}
	}
	return nil, nil
}

// checkMain: logger.Fatal в main допустим, os.Exit нет.
func checkMain(pass *analysis.Pass, body *ast.BlockStmt) {
	inspectCalls(pass, body, func(call *ast.CallExpr, name string) {
		if name == "os.Exit" {
			pass.Reportf(call.Pos(), "вызов os.Exit в функции main запрещён")
		}
	})
}

func checkLibrary(pass *analysis.Pass, body *ast.BlockStmt) {
	inspectCalls(pass, body, func(call *ast.CallExpr, name string) {
		if exits[name] {
			pass.Reportf(call.Pos(), "%s завершает процесс вне пакета main: верните ошибку", name)
		}
	})
}

func inspectCalls(pass *analysis.Pass, body *ast.BlockStmt, report func(*ast.CallExpr, string)) {
	ast.Inspect(body, func(n ast.Node) bool {
		call, ok := n.(*ast.CallExpr)
		if !ok {
			return true
		}
		sel, ok := call.Fun.(*ast.SelectorExpr)
		if !ok {
			return true
		}
		if f, ok := pass.TypesInfo.Uses[sel.Sel].(*types.Func); ok {
			report(call, f.FullName())
		}
		return true
	})
}
