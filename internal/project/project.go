// Package project inspects the local project the client operates on.
//
// Everything here is computed locally from the filesystem and configuration;
// no server round trip is involved. The server-side project operations
// (activation, reindexing) live in the tools package.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/pelletier/go-toml/v2"

	"symq/internal/config"
	"symq/internal/debug"
)

// Manifest is one recognized build manifest found at the project root.
type Manifest struct {
	File     string // manifest file name, e.g. "pyproject.toml"
	Name     string // project name declared in the manifest, may be empty
	Language string // language the manifest implies
}

// Status describes the local project and the configured server channel.
type Status struct {
	Root        string
	Name        string // configured name, else first manifest name, else base dir
	Fingerprint string // content hash of root path and manifests
	ConfigFile  bool   // a .symq.kdl exists at the root
	Transport   string
	Target      string // server command or endpoint, depending on transport
	ServerReady bool   // stdio: executable on PATH; sse: endpoint configured
	Manifests   []Manifest
	Languages   []string
}

// Inspect probes the configured project root and server channel.
func Inspect(cfg *config.Config) *Status {
	st := &Status{
		Root:      cfg.Project.Root,
		Name:      cfg.Project.Name,
		Transport: cfg.Server.Transport,
	}

	st.Manifests = probeManifests(cfg.Project.Root)
	for _, m := range st.Manifests {
		st.Languages = appendUnique(st.Languages, m.Language)
	}
	if st.Name == "" {
		st.Name = manifestName(st.Manifests)
	}
	if st.Name == "" {
		st.Name = filepath.Base(cfg.Project.Root)
	}

	st.Fingerprint = fingerprint(cfg.Project.Root, st.Manifests)
	if _, err := os.Stat(filepath.Join(cfg.Project.Root, config.DefaultConfigFile)); err == nil {
		st.ConfigFile = true
	}

	switch cfg.Server.Transport {
	case config.TransportSSE:
		st.Target = cfg.Server.URL
		st.ServerReady = cfg.Server.URL != ""
	default:
		st.Target = cfg.Server.Command
		st.ServerReady = commandAvailable(cfg.Server.Command)
	}
	return st
}

// tomlManifest covers both Cargo.toml ([package]) and pyproject.toml
// ([project] or legacy [tool.poetry]).
type tomlManifest struct {
	Package struct {
		Name string `toml:"name"`
	} `toml:"package"`
	Project struct {
		Name string `toml:"name"`
	} `toml:"project"`
	Tool struct {
		Poetry struct {
			Name string `toml:"name"`
		} `toml:"poetry"`
	} `toml:"tool"`
}

var manifestProbes = []struct {
	file     string
	language string
	name     func(data []byte) string
}{
	{"pyproject.toml", "python", pyprojectName},
	{"Cargo.toml", "rust", cargoName},
	{"go.mod", "go", goModuleName},
	{"package.json", "javascript", packageJSONName},
}

func probeManifests(root string) []Manifest {
	var found []Manifest
	for _, probe := range manifestProbes {
		path := filepath.Join(root, probe.file)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		m := Manifest{File: probe.file, Language: probe.language, Name: probe.name(data)}
		// A tsconfig next to package.json marks a TypeScript project.
		if probe.file == "package.json" {
			if _, err := os.Stat(filepath.Join(root, "tsconfig.json")); err == nil {
				m.Language = "typescript"
			}
		}
		found = append(found, m)
	}
	return found
}

func pyprojectName(data []byte) string {
	var doc tomlManifest
	if err := toml.Unmarshal(data, &doc); err != nil {
		debug.Warnf("unreadable pyproject.toml: %v", err)
		return ""
	}
	if doc.Project.Name != "" {
		return doc.Project.Name
	}
	return doc.Tool.Poetry.Name
}

func cargoName(data []byte) string {
	var doc tomlManifest
	if err := toml.Unmarshal(data, &doc); err != nil {
		debug.Warnf("unreadable Cargo.toml: %v", err)
		return ""
	}
	return doc.Package.Name
}

func goModuleName(data []byte) string {
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if rest, ok := strings.CutPrefix(line, "module "); ok {
			return filepath.Base(strings.TrimSpace(rest))
		}
	}
	return ""
}

func packageJSONName(data []byte) string {
	var doc struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		debug.Warnf("unreadable package.json: %v", err)
		return ""
	}
	return doc.Name
}

func manifestName(manifests []Manifest) string {
	for _, m := range manifests {
		if m.Name != "" {
			return m.Name
		}
	}
	return ""
}

// fingerprint hashes the root path and the manifest contents so that a
// changed manifest or a moved project yields a different value.
func fingerprint(root string, manifests []Manifest) string {
	digest := xxhash.New()
	digest.WriteString(root)
	for _, m := range manifests {
		if data, err := os.ReadFile(filepath.Join(root, m.File)); err == nil {
			digest.WriteString(m.File)
			digest.Write(data)
		}
	}
	return fmt.Sprintf("%016x", digest.Sum64())
}

func commandAvailable(command string) bool {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return false
	}
	_, err := exec.LookPath(fields[0])
	return err == nil
}

func appendUnique(list []string, item string) []string {
	for _, existing := range list {
		if existing == item {
			return list
		}
	}
	return append(list, item)
}
