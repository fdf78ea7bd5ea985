package config

import (
	"fmt"
	"os"
	"path/filepath"

	rssgerr "github.com/jcerise/rssg/internal/errors"
)

const defaultConfigYAML = `# rssg site configuration
site_title: My Site
base_url: ""
theme: default
content_location: ./content
output_location: ./output
`

const defaultPageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8">
    <title>{{ title }} &middot; {{ site_title }}</title>
    {% if base_url %}<base href="{{ base_url }}">{% endif %}
</head>
<body>
    <header><a href="index.html">{{ site_title }}</a></header>
    <main>
        {{ content|safe }}
    </main>
</body>
</html>
`

const defaultIndexTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8">
    <title>{{ site_title }}</title>
    {% if base_url %}<base href="{{ base_url }}">{% endif %}
</head>
<body>
    <h1>{{ site_title }}</h1>
    <ul>
    {% for page in pages %}
        <li>
            <a href="{{ page.Path }}">{{ page.Title }}</a>
            {% if page.Description %}&mdash; {{ page.Description }}{% endif %}
            {% if page.Tags %}<small>{% for tag in page.Tags %}#{{ tag }} {% endfor %}</small>{% endif %}
        </li>
    {% endfor %}
    </ul>
</body>
</html>
`

const sampleContent = `---
title: Hello, World!
description: The first page of a brand new site.
tags:
  - meta
related: []
publish_date: "2024-01-01"
numeric_attributes: []
---
# Hello, World!

Edit this file, or drop more Markdown files next to it, then run
` + "`rssg build`" + `.
`

// Init scaffolds a new project around configPath: the configuration file,
// the default theme templates, and one sample content file. Existing files
// are only replaced when force is set.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return rssgerr.New(rssgerr.CategoryConfig,
			"configuration file already exists (use --force to overwrite)").WithPath(configPath)
	}

	root := filepath.Dir(configPath)
	files := map[string]string{
		configPath: defaultConfigYAML,
		filepath.Join(root, DefaultTemplatesLocation, DefaultTheme, "template.html"): defaultPageTemplate,
		filepath.Join(root, DefaultTemplatesLocation, DefaultTheme, "index.html"):    defaultIndexTemplate,
		filepath.Join(root, DefaultContentLocation, "hello-world.md"):                sampleContent,
	}

	for path, body := range files {
		if path != configPath && !force {
			if _, err := os.Stat(path); err == nil {
				continue
			}
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return rssgerr.Wrap(err, rssgerr.CategoryFilesystem, "create project directory").WithPath(filepath.Dir(path))
		}
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			return rssgerr.Wrap(err, rssgerr.CategoryFilesystem, fmt.Sprintf("write %s", filepath.Base(path))).WithPath(path)
		}
	}
	return nil
}
