// Package main запускает multichecker для shortenbot.
//
// Он включает:
// - стандартные анализаторы go/analysis/passes
// - все SA-анализаторы staticcheck
// - S1000 и U1000
// - bodyclose: ответы API сокращателя должны закрываться
// - noexit: запрещает os.Exit в main и завершение процесса
//   (os.Exit, log.Fatal, zap Fatal) в остальных пакетах
// - noglobalclient: запрещает http.DefaultClient и http.Get/Post/...,
//   исходящие запросы идут только через httpclient.Client
//
// Запуск:
//
//	go run ./cmd/staticlint ./...
package main

import (
	"github.com/timakin/bodyclose/passes/bodyclose"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"
	"golang.org/x/tools/go/analysis/passes/nilness"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/shadow"
	"golang.org/x/tools/go/analysis/passes/structtag"
	"honnef.co/go/tools/staticcheck"

	"github.com/Totarae/shortenbot/cmd/staticlint/noexit"
	"github.com/Totarae/shortenbot/cmd/staticlint/noglobalclient"
)

func main() {
	multichecker.Main(analyzers()...)
}

func analyzers() []*analysis.Analyzer {
	list := []*analysis.Analyzer{
		shadow.Analyzer,
		structtag.Analyzer,
		nilness.Analyzer,
		printf.Analyzer,
	}

	// SA-анализаторы
	for _, a := range staticcheck.Analyzers {
		if a.Analyzer.Name[:2] == "SA" {
			list = append(list, a.Analyzer)
		}
	}

	for _, name := range []string{"S1000", "U1000"} {
		if a := findAnalyzer(name); a != nil {
			list = append(list, a)
		}
	}

	return append(list,
		bodyclose.Analyzer,
		noexit.Analyzer,
		noglobalclient.Analyzer,
	)
}

func findAnalyzer(name string) *analysis.Analyzer {
	for _, a := range staticcheck.Analyzers {
		if a.Analyzer.Name == name {
			return a.Analyzer
		}
	}
	return nil
}
