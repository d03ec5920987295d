// Laminate flattens source-code project trees into single text
// summaries for downstream review: an indented structure listing
// followed by the concatenated contents of the selected files.
//
// Every immediate subdirectory of the input root is treated as an
// independent project and produces one output document:
//
//	laminate --input ./input --output ./output --preset web
//	laminate --preset django --targets back,api
//	laminate --rules ./myrules.yaml
package main

import "github.com/agentic-research/laminate/cmd"

func main() {
	cmd.Execute()
}
