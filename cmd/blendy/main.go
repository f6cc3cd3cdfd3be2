package main

import (
	"flag"
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "init":
		initCmd := flag.NewFlagSet("init", flag.ExitOnError)
		initCmd.Usage = func() {
			fmt.Fprintf(os.Stderr, "Usage: blendy init [flags]\n\nInitialize a .blendy directory with default structure and config.\n\nFlags:\n")
			initCmd.PrintDefaults()
		}
		dir := initCmd.String("blendy-dir", ".blendy", "path to .blendy directory")
		_ = initCmd.Parse(os.Args[2:])

		exitOnError(runInit(*dir))
	case "serve":
		serveCmd := flag.NewFlagSet("serve", flag.ExitOnError)
		serveCmd.Usage = func() {
			fmt.Fprintf(os.Stderr, "Usage: blendy serve [flags]\n\nServe the Blender tools over MCP (stdio by default).\n\nFlags:\n")
			serveCmd.PrintDefaults()
		}
		configPath := serveCmd.String("config", "", "path to configuration file (default: .blendy/config.yaml or blendy.yaml)")
		dir := serveCmd.String("blendy-dir", ".blendy", "path to .blendy directory")
		envFile := serveCmd.String("env", ".env", "path to .env file (ignored if missing)")
		httpAddr := serveCmd.String("http", "", "serve streamable HTTP on this address instead of stdio (e.g. :8712)")
		_ = serveCmd.Parse(os.Args[2:])

		exitOnError(loadDotEnv(*envFile))
		exitOnError(runServe(*configPath, *dir, *httpAddr))
	case "create":
		createCmd := flag.NewFlagSet("create", flag.ExitOnError)
		createCmd.Usage = func() {
			fmt.Fprintf(os.Stderr, "Usage: blendy create -name <name> [flags]\n\nCreate one cube in the connected Blender scene.\n\nFlags:\n")
			createCmd.PrintDefaults()
		}
		configPath := createCmd.String("config", "", "path to configuration file")
		dir := createCmd.String("blendy-dir", ".blendy", "path to .blendy directory")
		envFile := createCmd.String("env", ".env", "path to .env file (ignored if missing)")
		name := createCmd.String("name", "", "name for the cube object (required)")
		size := createCmd.Float64("size", 0, "edge length of the cube (default 2.0)")
		location := createCmd.String("location", "", "cube location as x,y,z (default origin)")
		_ = createCmd.Parse(os.Args[2:])

		exitOnError(loadDotEnv(*envFile))
		exitOnError(runCreate(*configPath, *dir, *name, *size, *location))
	case "tools":
		toolsCmd := flag.NewFlagSet("tools", flag.ExitOnError)
		toolsCmd.Usage = func() {
			fmt.Fprintf(os.Stderr, "Usage: blendy tools [flags] [-- command args...]\n\nList the tools exposed by an MCP server. With no target, lists blendy's own tools.\n\nFlags:\n")
			toolsCmd.PrintDefaults()
		}
		url := toolsCmd.String("url", "", "streamable HTTP endpoint of an MCP server")
		_ = toolsCmd.Parse(os.Args[2:])

		exitOnError(runTools(*url, toolsCmd.Args()))
	case "console":
		consoleCmd := flag.NewFlagSet("console", flag.ExitOnError)
		consoleCmd.Usage = func() {
			fmt.Fprintf(os.Stderr, "Usage: blendy console [flags]\n\nOpen an interactive console against the Blender host.\n\nFlags:\n")
			consoleCmd.PrintDefaults()
		}
		configPath := consoleCmd.String("config", "", "path to configuration file")
		dir := consoleCmd.String("blendy-dir", ".blendy", "path to .blendy directory")
		envFile := consoleCmd.String("env", ".env", "path to .env file (ignored if missing)")
		_ = consoleCmd.Parse(os.Args[2:])

		exitOnError(loadDotEnv(*envFile))
		exitOnError(runConsole(*configPath, *dir))
	case "docs":
		exitOnError(runDocs())
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", os.Args[1])
		printUsage()
		os.Exit(2)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: blendy <command> [flags]

Commands:
  init     Initialize a .blendy directory with default structure and config
  serve    Serve the Blender tools over MCP (stdio or streamable HTTP)
  create   Create one cube in the connected Blender scene
  tools    List the tools exposed by an MCP server
  console  Open an interactive console against the Blender host
  docs     Show the rendered documentation

Run "blendy <command> -h" for command flags.
`)
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
