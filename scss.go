package tailwind

import (
	"fmt"
	"os"

	sass "github.com/bep/godartsass/v2"
)

// transpileScss turns a scss stylesheet into plain css before it is handed
// to tailwind, @tailwind directives pass through untouched
func transpileScss(path string) (string, error) {
	source, err := os.ReadFile(path)

	if err != nil {
		return "", err
	}

	transpiler, err := sass.Start(sass.Options{LogEventHandler: func(e sass.LogEvent) {
		fmt.Printf("[TAILWIND] [SCSS] %v\n", e)
	}})

	if err != nil {
		return "", err
	}

	defer transpiler.Close()

	result, err := transpiler.Execute(sass.Args{
		Source:       string(source),
		SourceSyntax: sass.SourceSyntaxSCSS,
		OutputStyle:  sass.OutputStyleExpanded,
	})

	if err != nil {
		return "", err
	}

	return result.CSS, nil
}
