// wallgen — Gradient wallpaper generator for Sway.
//
// Usage:
//
//	wallgen [-dir <path>] [-config <path>] [-scheme <name>] [-seed <n>] [-v]
//	wallgen list [-config <path>]
//	wallgen init [-config <path>]
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xob0t/deskkit/internal/logx"
	"github.com/xob0t/deskkit/pkg/generator"
	"github.com/xob0t/deskkit/pkg/theme"
)

func main() {
	args := os.Args[1:]
	cmd := ""
	if len(args) > 0 {
		cmd = args[0]
	}

	switch cmd {
	case "list":
		if err := runList(args[1:]); err != nil {
			fatal(err)
		}
	case "init":
		if err := runInit(args[1:]); err != nil {
			fatal(err)
		}
	case "help", "-h", "--help":
		printUsage()
	default:
		// Default: generate with flags on root. No arguments at all is the
		// usual startup-hook invocation.
		if err := run(args); err != nil {
			fatal(err)
		}
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("wallgen", flag.ExitOnError)

	var (
		dir        string
		configPath string
		schemeName string
		seed       uint64
		verbose    bool
	)

	fs.StringVar(&dir, "dir", "", "Output directory (default: ~/.config/sway/wallpapers)")
	fs.StringVar(&configPath, "config", "", "Theme file (default: ~/.config/sway/wallgen.yaml if present)")
	fs.StringVar(&schemeName, "scheme", "", "Use this scheme instead of a random one")
	fs.Uint64Var(&seed, "seed", 0, "Random seed for reproducible output (0: time based)")
	fs.BoolVar(&verbose, "v", false, "Debug logging")

	fs.Usage = printUsage
	if err := fs.Parse(args); err != nil {
		return err
	}
	logx.Init("wallgen", verbose)

	th, err := loadTheme(configPath)
	if err != nil {
		return err
	}

	if dir == "" {
		dir, err = swayPath("wallpapers")
		if err != nil {
			return err
		}
	}

	set := generator.SetConfig{
		Resolutions: th.Resolutions,
		Default:     th.Default,
		Pool:        th.Pool,
		Quality:     th.Quality,
		Rand:        generator.NewRand(seed),
		Written: func(path string) {
			fmt.Printf("Generated wallpaper: %s\n", path)
		},
	}

	if schemeName != "" {
		s, ok := generator.SchemeByName(th.Schemes, schemeName)
		if !ok {
			return fmt.Errorf("unknown scheme %q (see: wallgen list)", schemeName)
		}
		set.Scheme = &s
	}

	logx.Logger().Debug().
		Str("dir", dir).
		Int("resolutions", len(set.Resolutions)).
		Str("default", set.Default.String()).
		Uint64("seed", seed).
		Msg("generating wallpaper set")

	if _, err := generator.GenerateSet(dir, set); err != nil {
		return err
	}
	logx.Info(fmt.Sprintf("linked %s → %s", filepath.Join(dir, generator.LinkName), set.Default.FileName()))
	return nil
}

func runList(args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	var configPath string
	fs.StringVar(&configPath, "config", "", "Theme file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	logx.Init("wallgen", false)

	th, err := loadTheme(configPath)
	if err != nil {
		return err
	}

	fmt.Print(theme.FormatList(th))
	return nil
}

func runInit(args []string) error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	var (
		configPath string
		force      bool
	)
	fs.StringVar(&configPath, "config", "", "Output path for the sample theme file")
	fs.BoolVar(&force, "force", false, "Overwrite an existing file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if configPath == "" {
		p, err := swayPath("wallgen.yaml")
		if err != nil {
			return err
		}
		configPath = p
	}

	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("%s already exists (use -force to overwrite)", configPath)
	}
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(configPath), err)
	}
	if err := os.WriteFile(configPath, []byte(theme.ExampleYAML), 0644); err != nil {
		return fmt.Errorf("write theme: %w", err)
	}

	fmt.Printf("Created: %s\n", configPath)
	fmt.Println("Run: wallgen list")
	return nil
}

// loadTheme reads an explicit theme file, or the default one if it exists.
func loadTheme(explicit string) (*theme.Theme, error) {
	var (
		th       *theme.Theme
		warnings []string
		err      error
	)

	if explicit != "" {
		th, warnings, err = theme.Load(explicit)
	} else {
		var path string
		path, err = swayPath("wallgen.yaml")
		if err != nil {
			return nil, err
		}
		th, warnings, err = theme.LoadOptional(path)
	}
	if err != nil {
		return nil, fmt.Errorf("load theme: %w", err)
	}

	for _, w := range warnings {
		logx.Warnf("%s", w)
	}
	return th, nil
}

// swayPath resolves name under ~/.config/sway.
func swayPath(name string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home directory: %w", err)
	}
	if home == "" {
		return "", errors.New("home directory: empty $HOME")
	}
	return filepath.Join(home, ".config", "sway", name), nil
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func printUsage() {
	fmt.Print(`wallgen — Gradient wallpapers for Sway

USAGE:
    wallgen [options]
    wallgen list [-config <path>]
    wallgen init [-config <path>] [-force]

GENERATE (default):
    -dir <path>        Output directory (default: ~/.config/sway/wallpapers)
    -config <path>     Theme file (default: ~/.config/sway/wallgen.yaml if present)
    -scheme <name>     Fixed scheme instead of a random pick
    -seed <n>          Random seed for reproducible output
    -v                 Debug logging

    Writes modern-gradient-<W>x<H>.jpg for 1920x1080, 2560x1440 and 3840x2160
    and points modern-gradient.jpg at the 1920x1080 file.

LIST:
    Print the schemes and resolutions a run would use.

INIT:
    Write a sample theme file.

EXAMPLES:
    wallgen
    wallgen -scheme catppuccin-pink
    wallgen -dir /tmp/walls -seed 42
    wallgen init && wallgen list
`)
}
