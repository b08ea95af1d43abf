package srcdoc

import "fmt"

// BuildPrompt builds the documentation request for a single source file.
// The prompt names the file extension and embeds the full content.
func BuildPrompt(path, content string) string {
	return fmt.Sprintf("\nCan you write a short page documenting this script? %s\nFile content:\n%s\n",
		Ext(path), content)
}
