package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: markup <command> [flags] [args]")
	fmt.Fprintln(w, "       markup TEMPLATE.tpl DOCUMENT.md OUTPUT.html")
	fmt.Fprintln(w, "       markup")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert    Convert documents to HTML (default)")
	fmt.Fprintln(w, "  selftest   Check the converter against a fixture (no arguments)")
	fmt.Fprintln(w, "  config     Print the effective configuration")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'markup help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: markup convert [flags] [TEMPLATE.tpl] DOCUMENT OUTPUT")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert a document into an HTML page built from a template.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  TEMPLATE   Host template with one {{content}} marker (.tpl)")
	fmt.Fprintln(w, "             Optional: template.path from config, then --template")
	fmt.Fprintln(w, "  DOCUMENT   Source document (.md, .markdown) or directory")
	fmt.Fprintln(w, "  OUTPUT     Output file (.html, .htm), or directory for a directory")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Conversion:")
	fmt.Fprintln(w, "  -e, --engine <s>          Engine: markup, commonmark")
	fmt.Fprintln(w, "      --marker <s>          Template insertion marker")
	fmt.Fprintln(w, "      --images <list>       Image extensions for ![title](path)")
	fmt.Fprintln(w, "      --code <list>         Inlined source extensions for ![title](path)")
	fmt.Fprintln(w, "      --codearea-class <s>  Class attribute of code areas")
	fmt.Fprintln(w, "      --rebase-paths        Rewrite relative src/href for the output location")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Templates:")
	fmt.Fprintln(w, "  -t, --template <name>     Named template when no TEMPLATE is given")
	fmt.Fprintln(w, "      --asset-path <dir>    Directory with templates/<name>.tpl")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers for directories (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
}

// printSelfTestUsage prints usage for the selftest command.
func printSelfTestUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: markup selftest [flags] [FIXTURE]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert a fixture document and compare it with its expected HTML.")
	fmt.Fprintln(w, "FIXTURE defaults to the built-in \"selftest\" fixture.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --asset-path <dir>    Directory with fixtures/<name>.md and .html")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show timing")
}

// printConfigUsage prints usage for the config command.
func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: markup config [-c name]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the effective configuration as YAML.")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return nil
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "selftest":
		printSelfTestUsage(env.Stdout)
	case "config":
		printConfigUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: markup version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: markup help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		printUsage(env.Stderr)
		return fmt.Errorf("%w: unknown command %q", ErrUsage, args[0])
	}
	return nil
}
