package extractor

import (
	"context"
	"fmt"
	"net/rpc"

	"github.com/hashicorp/go-plugin"
)

// ExtractorPlugin implements the go-plugin Plugin interface for extractors.
type ExtractorPlugin struct {
	plugin.Plugin
	Impl Extractor
}

// Server returns an RPC server for this plugin.
func (p *ExtractorPlugin) Server(*plugin.MuxBroker) (interface{}, error) {
	return &ExtractorRPCServer{Impl: p.Impl}, nil
}

// Client returns an RPC client for this plugin.
func (p *ExtractorPlugin) Client(b *plugin.MuxBroker, c *rpc.Client) (interface{}, error) {
	return &ExtractorRPCClient{client: c}, nil
}

// ExtractorRPCServer is the RPC server implementation for extractors.
type ExtractorRPCServer struct {
	Impl Extractor
}

// Extract implements the RPC method for palette extraction.
func (s *ExtractorRPCServer) Extract(req Request, resp *PaletteData) error {
	data, err := s.Impl.Extract(context.Background(), req)
	if err != nil {
		return err
	}
	if data == nil {
		return fmt.Errorf("extractor returned no palette data")
	}
	*resp = *data
	return nil
}

// GetInfo implements the RPC method for fetching extractor metadata.
func (s *ExtractorRPCServer) GetInfo(_ interface{}, resp *Info) error {
	*resp = s.Impl.GetInfo()
	return nil
}

// ExtractorRPCClient is the RPC client implementation for extractors.
type ExtractorRPCClient struct {
	client *rpc.Client
}

// Extract calls the remote Extract method.
func (c *ExtractorRPCClient) Extract(ctx context.Context, req Request) (*PaletteData, error) {
	var resp PaletteData
	if err := c.client.Call("Plugin.Extract", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetInfo calls the remote GetInfo method.
func (c *ExtractorRPCClient) GetInfo() (Info, error) {
	var info Info
	err := c.client.Call("Plugin.GetInfo", new(interface{}), &info)
	return info, err
}
