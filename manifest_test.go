package texgen_test

import (
	"testing"

	"github.com/eolymp/go-texgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManifestBuild(t *testing.T) {
	manifest := &texgen.Manifest{
		Class:   "beamer",
		Options: []string{"aspectratio=169"},
		Packages: []texgen.Package{
			{Name: "babel", Options: []string{"russian"}},
			{Name: "graphicx"},
		},
		Body: []texgen.Entry{
			{
				Kind:       "frame",
				Title:      "Introduction",
				Attributes: []string{"arg1=arg2"},
				Children: []texgen.Entry{
					{
						Kind: "itemize",
						Children: []texgen.Entry{
							{Kind: "item", Children: []texgen.Entry{{Kind: "text", Text: "first"}}},
							{Kind: "item", Children: []texgen.Entry{{Kind: "text", Text: "second"}}},
						},
					},
				},
			},
			{Kind: "center", Children: []texgen.Entry{{Kind: "text", Text: "the end"}}},
		},
	}

	doc, err := manifest.Build()
	require.NoError(t, err)

	want := `\begin{document}
  \documentclass[aspectratio=169]{beamer}
  \usepackage[russian]{babel}
  \usepackage{graphicx}
  \begin{frame}[arg1=arg2]
    \frametitle{Introduction}
    \begin{itemize}
      \item
        first
      \item
        second
    \end{itemize}
  \end{frame}
  \begin{center}
    the end
  \end{center}
\end{document}
`

	assert.Equal(t, want, doc.String())
}

func TestManifestBuildCommandAndContainer(t *testing.T) {
	manifest := &texgen.Manifest{
		Body: []texgen.Entry{
			{Kind: "command", Name: "section", Parameter: "Overview"},
			{
				Kind:       "container",
				Name:       "quote",
				Attributes: []string{"spacing=tight", "style"},
				Children:   []texgen.Entry{{Kind: "text", Text: "words"}},
			},
			{Kind: "math", Children: []texgen.Entry{{Kind: "text", Text: "E = mc^2"}}},
		},
	}

	doc, err := manifest.Build()
	require.NoError(t, err)

	want := `\begin{document}
  \section{Overview}
  \begin{quote}[spacing=tight, style=]
    words
  \end{quote}
  \begin{math}
    E = mc^2
  \end{math}
\end{document}
`

	assert.Equal(t, want, doc.String())
}

func TestManifestBuildErrors(t *testing.T) {
	tt := []struct {
		name     string
		manifest *texgen.Manifest
		message  string
	}{
		{
			name:     "unknown kind",
			manifest: &texgen.Manifest{Body: []texgen.Entry{{Kind: "table"}}},
			message:  "unknown entry kind",
		},
		{
			name:     "command without name",
			manifest: &texgen.Manifest{Body: []texgen.Entry{{Kind: "command", Parameter: "x"}}},
			message:  "command entry requires a name",
		},
		{
			name:     "container without name",
			manifest: &texgen.Manifest{Body: []texgen.Entry{{Kind: "container"}}},
			message:  "container entry requires a name",
		},
		{
			name:     "item outside of list",
			manifest: &texgen.Manifest{Body: []texgen.Entry{{Kind: "item"}}},
			message:  "only allowed inside itemize and enumerate",
		},
		{
			name: "list with non-item child",
			manifest: &texgen.Manifest{Body: []texgen.Entry{{
				Kind:     "itemize",
				Children: []texgen.Entry{{Kind: "text", Text: "loose"}},
			}}},
			message: "can only contain items",
		},
		{
			name: "nested error surfaces",
			manifest: &texgen.Manifest{Body: []texgen.Entry{{
				Kind: "frame",
				Children: []texgen.Entry{{
					Kind:     "center",
					Children: []texgen.Entry{{Kind: "bogus"}},
				}},
			}}},
			message: "unknown entry kind",
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.manifest.Build()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.message)
		})
	}
}
