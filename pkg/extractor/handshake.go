package extractor

import (
	"github.com/hashicorp/go-plugin"
)

const (
	// PluginName is the key extractors are served and dispensed under.
	PluginName = "extractor"

	// InfoFlag is the argument extractor binaries must answer by printing
	// their Info block as JSON on stdout and exiting.
	InfoFlag = "--extractor-info"
)

// Handshake is the handshake configuration for the go-plugin protocol.
// It ensures extractors can only connect to compatible madder hosts.
var Handshake = plugin.HandshakeConfig{
	ProtocolVersion:  1, // Major version from ProtocolVersion
	MagicCookieKey:   "MADDER_EXTRACTOR",
	MagicCookieValue: "madder_palette_extractor",
}
