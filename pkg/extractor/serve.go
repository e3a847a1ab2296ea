package extractor

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/hashicorp/go-plugin"
)

// Run is the entry point for extractor binaries. It answers the
// InfoFlag argument with a JSON Info block and otherwise serves the
// extractor over the go-plugin protocol. It does not return.
//
// A minimal extractor main looks like:
//
//	func main() {
//		extractor.Run(&myExtractor{})
//	}
func Run(impl Extractor) {
	if len(os.Args) > 1 && os.Args[1] == InfoFlag {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(impl.GetInfo()); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding extractor info: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	Serve(impl)
}

// Serve serves the extractor over the go-plugin protocol without the
// InfoFlag handling. Most extractors should use Run instead.
func Serve(impl Extractor) {
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: Handshake,
		Plugins: map[string]plugin.Plugin{
			PluginName: &ExtractorPlugin{Impl: impl},
		},
	})
}
