package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/py2toml/cli/internal/parser"
)

// fromSource is a shorthand for parse+extract over a snippet.
func fromSource(t *testing.T, src string) (Metadata, []Warning) {
	t.Helper()
	call, err := parser.FindSetupCall(src)
	require.NoError(t, err)
	return FromCall(call)
}

func TestAuthorFields(t *testing.T) {
	t.Run("comma-separated authors split and trim", func(t *testing.T) {
		md, _ := fromSource(t, `setup(author="Alice,  Bob , Carol")`)
		assert.Equal(t, []string{"Alice", "Bob", "Carol"}, md.Author)
	})

	t.Run("matching emails merge by index", func(t *testing.T) {
		md, warns := fromSource(t, `setup(author="Alice, Bob", author_email="a@x.com, b@y.com")`)
		assert.Equal(t, []string{"Alice <a@x.com>", "Bob <b@y.com>"}, md.Author)
		assert.Empty(t, warns)
	})

	t.Run("count mismatch leaves authors unmerged", func(t *testing.T) {
		md, warns := fromSource(t, `setup(author="Alice, Bob", author_email="a@x.com")`)
		assert.Equal(t, []string{"Alice", "Bob"}, md.Author)
		require.Len(t, warns, 1)
		assert.Equal(t, "author", warns[0].Field)
	})

	t.Run("emails without authors warn", func(t *testing.T) {
		md, warns := fromSource(t, `setup(author_email="a@x.com")`)
		assert.Empty(t, md.Author)
		assert.Len(t, warns, 1)
	})

	t.Run("non-string author value warns and skips", func(t *testing.T) {
		md, warns := fromSource(t, `setup(author=42)`)
		assert.Empty(t, md.Author)
		require.Len(t, warns, 1)
		assert.Equal(t, "author", warns[0].Field)
	})
}

func TestKeywordsField(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{
			name: "comma-separated string",
			src:  `setup(keywords="a, b, c")`,
			want: []string{"a", "b", "c"},
		},
		{
			name: "whitespace fallback when commas absent",
			src:  `setup(keywords="a b c")`,
			want: []string{"a", "b", "c"},
		},
		{
			name: "single keyword",
			src:  `setup(keywords="solo")`,
			want: []string{"solo"},
		},
		{
			name: "sequence used element-wise",
			src:  `setup(keywords=[" a ", "b"])`,
			want: []string{"a", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			md, _ := fromSource(t, tt.src)
			assert.Equal(t, tt.want, md.Keywords)
		})
	}
}

func TestScalarAndSequenceClassification(t *testing.T) {
	t.Run("multi-line strings collapse to one line", func(t *testing.T) {
		md, _ := fromSource(t, "setup(description=\"\"\"spread\n   over\n   lines\"\"\")")
		assert.Equal(t, "spread over lines", md.Description)
	})

	t.Run("list elements are trimmed", func(t *testing.T) {
		md, _ := fromSource(t, `setup(install_requires=[" requests ", "click"])`)
		assert.Equal(t, []string{"requests", "click"}, md.InstallRequires)
	})

	t.Run("non-string scalars pass through to extra", func(t *testing.T) {
		md, _ := fromSource(t, `setup(zip_safe=False)`)
		assert.Equal(t, false, md.Extra["zip_safe"])
	})

	t.Run("numeric version takes its text form", func(t *testing.T) {
		md, _ := fromSource(t, `setup(version=1.0)`)
		assert.Equal(t, "1.0", md.Version)
	})

	t.Run("bare name stores the identifier text", func(t *testing.T) {
		md, _ := fromSource(t, `setup(version=VERSION)`)
		assert.Equal(t, "VERSION", md.Version)
	})

	t.Run("unsupported shapes are omitted with a warning", func(t *testing.T) {
		md, warns := fromSource(t, `setup(packages=find_packages(), name="pkg")`)
		assert.Equal(t, "pkg", md.Name)
		assert.NotContains(t, md.Extra, "packages")
		require.Len(t, warns, 1)
		assert.Equal(t, "packages", warns[0].Field)
	})

	t.Run("kwargs expansion warns", func(t *testing.T) {
		_, warns := fromSource(t, `setup(name="pkg", **extra)`)
		require.Len(t, warns, 1)
		assert.Equal(t, "", warns[0].Field)
	})

	t.Run("last write wins on duplicate keys", func(t *testing.T) {
		md, _ := fromSource(t, `setup(name="first", name="second")`)
		assert.Equal(t, "second", md.Name)
	})

	t.Run("unrecognized string fields land in extra", func(t *testing.T) {
		md, _ := fromSource(t, `setup(long_description="text", maintainer="Dana")`)
		assert.Equal(t, "text", md.Extra["long_description"])
		assert.Equal(t, "Dana", md.Extra["maintainer"])
		assert.Equal(t, []string{"long_description", "maintainer"}, md.ExtraKeys())
	})
}

func TestFullSetupExtraction(t *testing.T) {
	src := `
from setuptools import setup

setup(
    name="mytool",
    version="2.1.0",
    description="A tool that "
    "does things",
    license="MIT",
    url="https://example.com/mytool",
    author="Alice, Bob",
    author_email="a@x.com, b@y.com",
    keywords="cli, tooling",
    classifiers=[
        "Programming Language :: Python :: 3",
        "License :: OSI Approved :: MIT License",
    ],
    install_requires=["requests", "click"],
    scripts=["bin/mytool"],
    python_requires=">=3.8",
)
`
	md, warns := fromSource(t, src)

	assert.Empty(t, warns)
	assert.Equal(t, "mytool", md.Name)
	assert.Equal(t, "2.1.0", md.Version)
	assert.Equal(t, "A tool that does things", md.Description)
	assert.Equal(t, "MIT", md.License)
	assert.Equal(t, "https://example.com/mytool", md.URL)
	assert.Equal(t, []string{"Alice <a@x.com>", "Bob <b@y.com>"}, md.Author)
	assert.Equal(t, []string{"cli", "tooling"}, md.Keywords)
	assert.Equal(t, []string{
		"Programming Language :: Python :: 3",
		"License :: OSI Approved :: MIT License",
	}, md.Classifiers)
	assert.Equal(t, []string{"requests", "click"}, md.InstallRequires)
	assert.Equal(t, []string{"bin/mytool"}, md.Scripts)
	assert.Equal(t, ">=3.8", md.PythonRequires)
}
