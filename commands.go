package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/google/uuid"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/jask/bmk/internal/config"
)

// ---------------------------------------------------------------------------
// Scriptable command surface
// ---------------------------------------------------------------------------
//
// bmk list [--tag TAG]
// bmk add KEY URL [--desc TEXT] [--tags a,b,c]
// bmk open KEY
// bmk delete KEY
// bmk export [--out FILE]
// bmk import FILE

var (
	errNotFound     = errors.New("bookmark not found")
	errDuplicateKey = errors.New("bookmark already exists")
)

const usageText = `Usage:
  bmk                      interactive browser
  bmk list [--tag TAG]     print bookmarks
  bmk add KEY URL [--desc TEXT] [--tags a,b,c]
  bmk open KEY             open a bookmark in the browser
  bmk delete KEY           delete a bookmark
  bmk export [--out FILE]  write bookmarks as YAML
  bmk import FILE          merge bookmarks from a YAML file
  bmk config [init]        show effective config, or persist it to disk
`

// runCommand dispatches one subcommand against the store. openURL is the
// browser collaborator, injected so tests can capture it.
func runCommand(st store, name string, args []string, out io.Writer, openURL func(string) error) error {
	switch name {
	case "list":
		fs := pflag.NewFlagSet("list", pflag.ContinueOnError)
		tag := fs.StringP("tag", "t", "", "only show bookmarks carrying this tag")
		if err := fs.Parse(args); err != nil {
			return err
		}
		return cmdList(st, *tag, out)
	case "add":
		fs := pflag.NewFlagSet("add", pflag.ContinueOnError)
		desc := fs.StringP("desc", "d", "", "description")
		tags := fs.StringP("tags", "t", "", "comma-separated tags")
		if err := fs.Parse(args); err != nil {
			return err
		}
		rest := fs.Args()
		if len(rest) != 2 {
			return fmt.Errorf("add: want KEY URL, got %d arguments", len(rest))
		}
		return cmdAdd(st, rest[0], rest[1], *desc, splitTags(*tags), out)
	case "open":
		if len(args) != 1 {
			return fmt.Errorf("open: want KEY")
		}
		return cmdOpen(st, args[0], out, openURL)
	case "delete":
		if len(args) != 1 {
			return fmt.Errorf("delete: want KEY")
		}
		return cmdDelete(st, args[0], out)
	case "export":
		fs := pflag.NewFlagSet("export", pflag.ContinueOnError)
		outPath := fs.StringP("out", "o", "", "output file (default stdout)")
		if err := fs.Parse(args); err != nil {
			return err
		}
		return cmdExport(st, *outPath, out)
	case "import":
		if len(args) != 1 {
			return fmt.Errorf("import: want FILE")
		}
		return cmdImport(st, args[0], out)
	case "help", "-h", "--help":
		fmt.Fprint(out, usageText)
		return nil
	default:
		return fmt.Errorf("unknown command %q\n\n%s", name, usageText)
	}
}

// runConfigCommand shows the effective configuration, or persists it with
// "init" so the user has a config file to edit. It runs before any store is
// opened: inspecting config must work even when the database path is bad.
func runConfigCommand(cfg config.Config, args []string, out io.Writer) error {
	if len(args) == 0 {
		fmt.Fprintf(out, "database.path = %s\n", cfg.Database.Path)
		fmt.Fprintf(out, "browser.command = %s\n", cfg.Browser.Command)
		return nil
	}
	switch args[0] {
	case "init":
		if err := config.Save(cfg); err != nil {
			return err
		}
		fmt.Fprintln(out, "Config written.")
		return nil
	default:
		return fmt.Errorf("config: unknown subcommand %q", args[0])
	}
}

func cmdList(st store, tag string, out io.Writer) error {
	bookmarks, err := st.Load()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%-12s | %-40s | %-40s | %s\n", "Key", "URL", "Description", "Tags")
	fmt.Fprintln(out, strings.Repeat("-", 110))
	for _, b := range bookmarks {
		if tag != "" && !hasTag(b, tag) {
			continue
		}
		fmt.Fprintf(out, "%-12s | %-40s | %-40s | %s\n", b.name, b.url, b.desc, joinTags(b.tags))
	}
	return nil
}

func cmdAdd(st store, key, url, desc string, tags []string, out io.Writer) error {
	bookmarks, err := st.Load()
	if err != nil {
		return err
	}
	if findByName(bookmarks, key) >= 0 {
		return fmt.Errorf("%w: %q", errDuplicateKey, key)
	}
	bookmarks = append(bookmarks, bookmark{
		id:   uuid.NewString(),
		name: key,
		url:  url,
		desc: desc,
		tags: tags,
	})
	if err := st.Save(bookmarks); err != nil {
		return err
	}
	fmt.Fprintf(out, " > Bookmark %q added.\n", key)
	return nil
}

func cmdOpen(st store, key string, out io.Writer, openURL func(string) error) error {
	bookmarks, err := st.Load()
	if err != nil {
		return err
	}
	idx := findByName(bookmarks, key)
	if idx < 0 {
		return keyNotFoundError(bookmarks, key)
	}
	fmt.Fprintf(out, "Opening %q (%s)\n", key, bookmarks[idx].url)
	if err := openURL(bookmarks[idx].url); err != nil {
		return fmt.Errorf("open url for %q: %w", key, err)
	}
	return nil
}

func cmdDelete(st store, key string, out io.Writer) error {
	bookmarks, err := st.Load()
	if err != nil {
		return err
	}
	idx := findByName(bookmarks, key)
	if idx < 0 {
		return keyNotFoundError(bookmarks, key)
	}
	bookmarks = append(bookmarks[:idx], bookmarks[idx+1:]...)
	if err := st.Save(bookmarks); err != nil {
		return err
	}
	fmt.Fprintf(out, "Bookmark %q deleted.\n", key)
	return nil
}

// keyNotFoundError builds the not-found error, suggesting the nearest
// existing key when one is plausibly close.
func keyNotFoundError(bookmarks []bookmark, key string) error {
	if suggestion, ok := nearestKey(bookmarks, key); ok {
		return fmt.Errorf("%w: %q (did you mean %q?)", errNotFound, key, suggestion)
	}
	return fmt.Errorf("%w: %q", errNotFound, key)
}

// nearestKey returns the existing key with the smallest levenshtein
// distance to key, when that distance is small enough to be a likely typo.
func nearestKey(bookmarks []bookmark, key string) (string, bool) {
	best := ""
	bestDist := -1
	for _, b := range bookmarks {
		d := levenshtein.ComputeDistance(strings.ToLower(key), strings.ToLower(b.name))
		if bestDist < 0 || d < bestDist {
			best = b.name
			bestDist = d
		}
	}
	if bestDist < 0 || bestDist > 3 {
		return "", false
	}
	return best, true
}

// ---------------------------------------------------------------------------
// YAML interop (predecessor file format: name -> {url, desc, tags})
// ---------------------------------------------------------------------------

type yamlBookmark struct {
	URL  string   `yaml:"url"`
	Desc string   `yaml:"desc"`
	Tags []string `yaml:"tags,omitempty"`
}

func cmdExport(st store, outPath string, out io.Writer) error {
	bookmarks, err := st.Load()
	if err != nil {
		return err
	}
	doc := make(map[string]yamlBookmark, len(bookmarks))
	for _, b := range bookmarks {
		doc[b.name] = yamlBookmark{URL: b.url, Desc: b.desc, Tags: b.tags}
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode bookmarks: %w", err)
	}
	if outPath == "" {
		_, err = out.Write(data)
		return err
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	fmt.Fprintf(out, "Exported %d bookmarks to %s\n", len(bookmarks), outPath)
	return nil
}

// cmdImport merges bookmarks from a YAML file. Existing keys are kept;
// imported entries are appended in key order for a deterministic result.
func cmdImport(st store, path string, out io.Writer) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	var doc map[string]yamlBookmark
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	bookmarks, err := st.Load()
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	added, skipped := 0, 0
	for _, k := range keys {
		if findByName(bookmarks, k) >= 0 {
			skipped++
			continue
		}
		e := doc[k]
		bookmarks = append(bookmarks, bookmark{
			id:   uuid.NewString(),
			name: k,
			url:  e.URL,
			desc: e.Desc,
			tags: e.Tags,
		})
		added++
	}
	if err := st.Save(bookmarks); err != nil {
		return err
	}
	fmt.Fprintf(out, "Imported %d bookmarks (%d already present).\n", added, skipped)
	return nil
}
