package ruleset

// Web is the preset for JavaScript/TypeScript frontend projects.
// Deep expansion covers src and docs; selection is extension-driven
// with a handful of always-included root manifests.
func Web() Ruleset {
	r := Ruleset{
		Name:         "web",
		OutputSuffix: "_web_summary.txt",
		Targets:      []string{"src", "docs"},
		AllowExts: []string{
			".js", ".jsx", ".ts", ".tsx",
			".html", ".css", ".scss",
			".json",
			".md",
			".config.js",
			".yaml", ".yml",
			".sh", ".bash",
			".mjs",
			".puml",
			".mermaid",
		},
		RootAllowNames: []string{
			"eslint.config.js", "vite.config.js", "index.html",
			"package.json", "README.md", "citation.cff",
			"nest-cli.json", "tsconfig.json", "tsconfig.build.json",
		},
		IgnoreNames: []string{"package-lock.json", ".gitignore"},
		IgnoreExts: []string{
			".svg", ".png", ".jpg", ".jpeg", ".gif", ".webp", ".ico",
			".woff", ".woff2", ".ttf", ".otf",
		},
		IgnoreDirsRoot: []string{
			"node_modules", "dist", "build", ".git", ".vscode",
			"__pycache__", ".idea", "input", "output",
		},
	}
	r.Normalize()
	return r
}

// Build is the preset for build/package artifact trees. It carries a
// known-binary extension list and enables content sniffing so that
// extensionless files (launchers, manifests) are included only when
// they hold text.
func Build() Ruleset {
	r := Ruleset{
		Name:         "build",
		OutputSuffix: "_build_summary.txt",
		Targets:      []string{"package"},
		AllowExts: []string{
			".json",
			".md",
			".config.js",
			".yaml", ".yml",
			".sh", ".bash",
			".cfg",
		},
		RootAllowNames: []string{
			"eslint.config.js", "vite.config.js", "index.html",
			"package.json", "README.md",
		},
		IgnoreNames: []string{"package-lock.json", ".gitignore"},
		IgnoreExts: []string{
			".svg", ".png", ".jpg", ".jpeg", ".gif", ".webp", ".ico",
			".woff", ".woff2", ".ttf", ".otf",
			".wasm", ".so",
		},
		IgnoreDirsRoot: []string{
			"node_modules", "dist", "build", ".git", ".vscode",
			"__pycache__", "input", "output",
		},
		DetectBinary: true,
		BinaryExts: []string{
			".exe", ".dll", ".so", ".dylib", ".bin", ".dat", ".obj", ".o", ".a", ".lib",
			".pyc", ".pyd", ".pyo", ".wasm", ".class", ".jar",
			".png", ".jpg", ".jpeg", ".gif", ".webp", ".bmp", ".ico", ".tiff",
			".mp3", ".mp4", ".avi", ".mov", ".mkv", ".flv", ".wav", ".wma",
			".zip", ".tar", ".gz", ".7z", ".rar", ".bz2",
			".ttf", ".woff", ".woff2", ".eot", ".otf",
			".db", ".sqlite", ".mdb",
		},
	}
	r.Normalize()
	return r
}

// Django is the preset for Python backend projects. It adds
// anywhere-level ignores for cache directories, a 1 MiB content cap,
// and extensionless allow tokens such as Pipfile.
func Django() Ruleset {
	r := Ruleset{
		Name:         "django",
		OutputSuffix: "_django_summary.txt",
		Targets:      []string{"back"},
		AllowExts: []string{
			".py",
			".html", ".css", ".js",
			".json",
			".md",
			".config.js", ".yaml", ".yml",
			".sh", ".bash",
			"Pipfile",
		},
		RootAllowNames: []string{
			"Pipfile", "README.md", "requirements.txt",
			"setup.py", "setup.cfg", "pyproject.toml", "manage.py",
		},
		IgnoreNames: []string{
			"Pipfile.lock", ".DS_Store", "listfiles.py", "estrutura_pastas.txt",
		},
		IgnoreExts: []string{
			".svg", ".png", ".jpg", ".jpeg", ".gif", ".webp", ".ico",
			".woff", ".woff2", ".ttf", ".otf",
			".pyc",
			".lock",
		},
		IgnoreDirsRoot: []string{
			".git", ".vscode", "venv", ".venv", "env", "dist", "build",
			"input", "output",
		},
		IgnoreDirsAnywhere: []string{
			"__pycache__", "node_modules",
			".pytest_cache", ".mypy_cache", ".tox",
			"htmlcov", "coverage",
		},
		IgnoreFilesAnywhere: []string{".DS_Store"},
		MaxFileSize:         1 << 20,
	}
	r.Normalize()
	return r
}

// Preset returns a built-in ruleset by name.
func Preset(name string) (Ruleset, bool) {
	switch name {
	case "web":
		return Web(), true
	case "build":
		return Build(), true
	case "django":
		return Django(), true
	}
	return Ruleset{}, false
}

// PresetNames lists the built-in presets in stable order.
func PresetNames() []string {
	return []string{"build", "django", "web"}
}
