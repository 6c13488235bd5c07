// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"cmp"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

const (
	InputNotFoundId Id = iota + 1
	PermissionDeniedId
	WriteFailedId
	UnknownLicenseId
	InvalidCommentStyleId
	ConfigLoadFailedId
)

type (
	Id int

	MarkdownMsg string

	HttpLink string

	Issue struct {
		id       Id          // ID used to lookup the issue
		mdMsg    MarkdownMsg // Markdown text that will be rendered
		docLinks []HttpLink
		extLinks []HttpLink // external links that might be useful for the user
	}
)

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

// Render renders the issue as terminal Markdown using the given glamour style
// ("dark", "light", "notty", or a path to a style file).
func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n## See also:\n"
		for _, link := range i.docLinks {
			extraMd += "\n- <" + string(link) + ">"
		}
		for _, link := range i.extLinks {
			extraMd += "\n- <" + string(link) + ">"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	inputNotFoundIssue = &Issue{
		id: InputNotFoundId,
		mdMsg: `
# Input file not found!

The file passed with ` + "`--in`" + ` does not exist, so there is nothing to put a header on.

## Things you can try:
- Check the path for typos; relative paths are resolved from the current directory
- Create the file first if you only want the header:
~~~
$ touch main.go
$ lichead apply mit --in main.go
~~~
- Use ` + "`lichead render`" + ` to print the license text without touching any file`,
	}

	permissionDeniedIssue = &Issue{
		id: PermissionDeniedId,
		mdMsg: `
# Permission denied!

lichead could not read the input file or could not write the output file.

## Things you can try:
- Check the file permissions:
~~~
$ ls -l <file>
~~~
- The output is written to a temporary file next to the destination and then
  renamed, so the destination directory must be writable too
- Write to a different location with ` + "`--out`",
	}

	writeFailedIssue = &Issue{
		id: WriteFailedId,
		mdMsg: `
# Failed to write the output file!

The composed file could not be written. The destination was left unchanged.

## Things you can try:
- Make sure the destination directory exists
- Check that the disk is not full
- Preview the result without writing:
~~~
$ lichead apply mit --in main.go --dry-run
~~~`,
	}

	unknownLicenseIssue = &Issue{
		id: UnknownLicenseId,
		mdMsg: `
# Unknown license!

lichead ships four license texts: ` + "`mit`, `apache2`, `bsd2` and `bsd3`" + `.

## Things you can try:
- List the supported licenses and their aliases:
~~~
$ lichead list
~~~
- Set a default in your config file:
~~~cue
license: "apache2"
~~~`,
		extLinks: []HttpLink{"https://choosealicense.com/licenses/"},
	}

	invalidCommentStyleIssue = &Issue{
		id: InvalidCommentStyleId,
		mdMsg: `
# Invalid comment style!

Valid styles are ` + "`none`, `slash`, `hash`, `dash`, `semicolon` and `block`" + `.

## Things you can try:
- Pass an explicit prefix and suffix instead:
~~~
$ lichead apply mit --in page.html --prefix "<!-- " --suffix " -->"
~~~
- Leave the style out to infer it from the output file extension`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

The configuration file could not be parsed or did not match the schema.

## Things you can try:
- Print the file location:
~~~
$ lichead config path
~~~
- Recreate a default configuration:
~~~
$ lichead config init
~~~
- Point to another file with ` + "`--config`",
		docLinks: []HttpLink{"https://cuelang.org/docs/tour/"},
	}

	issues = map[Id]*Issue{
		inputNotFoundIssue.Id():       inputNotFoundIssue,
		permissionDeniedIssue.Id():    permissionDeniedIssue,
		writeFailedIssue.Id():         writeFailedIssue,
		unknownLicenseIssue.Id():      unknownLicenseIssue,
		invalidCommentStyleIssue.Id(): invalidCommentStyleIssue,
		configLoadFailedIssue.Id():    configLoadFailedIssue,
	}
)

// Values returns every catalog entry ordered by Id.
func Values() []*Issue {
	out := make([]*Issue, 0, len(issues))
	for _, i := range issues {
		out = append(out, i)
	}
	slices.SortFunc(out, func(a, b *Issue) int { return cmp.Compare(a.id, b.id) })
	return out
}

func Get(id Id) *Issue {
	return issues[id]
}
