// Command nokogiri inspects the namespace declarations of a markup document,
// either directly or through a JavaScript expression evaluated against the
// bound document.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rgrove/nokogiri/html"
	"github.com/rgrove/nokogiri/js"
	"github.com/rgrove/nokogiri/tree"
	"github.com/rgrove/nokogiri/xml"
)

func main() {
	script := flag.String("e", "", "JavaScript expression to evaluate with `document` bound")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-e script] file\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), *script); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(path, script string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	mem := tree.NewMemory()
	native, err := html.ParseReader(f, mem)
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	doc := xml.Wrap(native)
	defer doc.Close()

	if script != "" {
		runtime := js.NewRuntime()
		binder := js.NewBinder(runtime)
		runtime.SetDocument(binder.BindDocument(doc))
		result, err := runtime.Execute(script)
		if err != nil {
			return err
		}
		fmt.Println(result)
		return nil
	}

	root := doc.Root()
	if root == nil {
		return fmt.Errorf("%s: no root element", path)
	}
	for _, ns := range doc.InScopeNamespaces(root) {
		prefix, ok := ns.Prefix()
		if !ok {
			prefix = "(default)"
		}
		href, _ := ns.Href()
		fmt.Printf("%s -> %s\n", prefix, href)
	}
	return nil
}
