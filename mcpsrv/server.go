package mcpsrv

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/cybersky/showcase/mcpsrv/dto"
	"github.com/cybersky/showcase/types"
)

type productsListArgs struct {
	Platform string `json:"platform,omitempty" jsonschema:"Optional platform filter: web, ios, android, mac"`
	Featured *bool  `json:"featured,omitempty" jsonschema:"Optional featured filter"`
	Limit    int    `json:"limit,omitempty" jsonschema:"Optional maximum number of items"`
}

type productGetArgs struct {
	Slug string `json:"slug" jsonschema:"Product slug"`
}

type productResolveLinkArgs struct {
	Slug     string `json:"slug" jsonschema:"Product slug"`
	Platform string `json:"platform" jsonschema:"Platform: web, ios, android, mac"`
}

type productsListOutput struct {
	Total int           `json:"total"`
	Items []dto.Product `json:"items"`
}

type productGetOutput struct {
	Item dto.ProductDetail `json:"item"`
}

type productResolveLinkOutput struct {
	Slug        string `json:"slug"`
	Platform    string `json:"platform"`
	Action      string `json:"action"`
	URL         string `json:"url"`
	Placeholder bool   `json:"placeholder"`
	Listed      bool   `json:"listed"`
}

type statsListOutput struct {
	Items []dto.Stat `json:"items"`
}

type contactsListOutput struct {
	Items []dto.Contact `json:"items"`
}

type catalogReloadOutput struct {
	Status   string `json:"status"`
	Products int    `json:"products"`
}

type ServerOptions struct {
	EnableAdmin bool
	APIKey      string
}

type cacheClearSource interface {
	ClearCache()
}

type reloadSource interface {
	Reload(ctx context.Context) (types.Catalog, error)
}

// reload refreshes source in place. Sources that can reload keep their last
// good catalog on failure; cache-only sources are cleared and read again.
func reload(ctx context.Context, source types.CatalogSource) (types.Catalog, bool, error) {
	if r, ok := source.(reloadSource); ok {
		c, err := r.Reload(ctx)
		return c, true, err
	}
	if clearable, ok := source.(cacheClearSource); ok {
		clearable.ClearCache()
		c, err := source.GetCatalog(ctx)
		return c, true, err
	}
	return types.Catalog{}, false, nil
}

func NewServer(source types.CatalogSource, version string, opts *ServerOptions) *mcp.Server {
	if strings.TrimSpace(version) == "" {
		version = "dev"
	}
	if opts == nil {
		opts = &ServerOptions{}
	}

	server := mcp.NewServer(&mcp.Implementation{Name: "showcase", Version: version}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "products_list",
		Description: "List portfolio products in display order.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args productsListArgs) (*mcp.CallToolResult, productsListOutput, error) {
		return productsListHandler(ctx, req, args, source)
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "product_get",
		Description: "Get a product and its resolved links by slug.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args productGetArgs) (*mcp.CallToolResult, productGetOutput, error) {
		return productGetHandler(ctx, req, args, source)
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "product_resolve_link",
		Description: "Resolve the outbound link of a product for a platform.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args productResolveLinkArgs) (*mcp.CallToolResult, productResolveLinkOutput, error) {
		return productResolveLinkHandler(ctx, req, args, source)
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "stats_list",
		Description: "List the headline statistics.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, statsListOutput, error) {
		return statsListHandler(ctx, req, source)
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "contacts_list",
		Description: "List contact links.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, contactsListOutput, error) {
		return contactsListHandler(ctx, req, source)
	})

	if opts.EnableAdmin && strings.TrimSpace(opts.APIKey) != "" {
		mcp.AddTool(server, &mcp.Tool{
			Name:        "catalog_reload",
			Description: "Drop the cached catalog and load it again (admin).",
		}, func(ctx context.Context, req *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, catalogReloadOutput, error) {
			return catalogReloadHandler(ctx, req, source)
		})
	}

	return server
}

func productsListHandler(ctx context.Context, _ *mcp.CallToolRequest, args productsListArgs, source types.CatalogSource) (*mcp.CallToolResult, productsListOutput, error) {
	var platform types.Platform
	if raw := strings.TrimSpace(args.Platform); raw != "" {
		p, err := types.ParsePlatform(raw)
		if err != nil {
			return errorToolResult(err.Error()), productsListOutput{}, nil
		}
		platform = p
	}

	c, err := source.GetCatalog(ctx)
	if err != nil {
		return errorToolResult("load catalog failed"), productsListOutput{}, nil
	}

	products := make([]types.Product, 0, len(c.Products()))
	for _, p := range c.Products() {
		if platform != "" && !listsPlatform(p, platform) {
			continue
		}
		if args.Featured != nil && p.Featured() != *args.Featured {
			continue
		}
		products = append(products, p)
	}
	products = applyLimit(products, args.Limit)

	return nil, productsListOutput{
		Total: len(products),
		Items: dto.FromProducts(products),
	}, nil
}

func productGetHandler(ctx context.Context, _ *mcp.CallToolRequest, args productGetArgs, source types.CatalogSource) (*mcp.CallToolResult, productGetOutput, error) {
	slug := strings.TrimSpace(args.Slug)
	if slug == "" {
		return errorToolResult("slug is required"), productGetOutput{}, nil
	}

	c, err := source.GetCatalog(ctx)
	if err != nil {
		return errorToolResult("load catalog failed"), productGetOutput{}, nil
	}
	p, ok := c.Product(slug)
	if !ok {
		return errorToolResult("product not found: " + slug), productGetOutput{}, nil
	}

	return nil, productGetOutput{Item: dto.FromProductDetail(p)}, nil
}

func productResolveLinkHandler(ctx context.Context, _ *mcp.CallToolRequest, args productResolveLinkArgs, source types.CatalogSource) (*mcp.CallToolResult, productResolveLinkOutput, error) {
	slug := strings.TrimSpace(args.Slug)
	if slug == "" {
		return errorToolResult("slug is required"), productResolveLinkOutput{}, nil
	}
	platform, err := types.ParsePlatform(args.Platform)
	if err != nil {
		return errorToolResult(err.Error()), productResolveLinkOutput{}, nil
	}

	c, err := source.GetCatalog(ctx)
	if err != nil {
		return errorToolResult("load catalog failed"), productResolveLinkOutput{}, nil
	}
	p, ok := c.Product(slug)
	if !ok {
		return errorToolResult("product not found: " + slug), productResolveLinkOutput{}, nil
	}

	url := types.ResolveLink(p, platform)
	return nil, productResolveLinkOutput{
		Slug:        p.Slug(),
		Platform:    platform.String(),
		Action:      platform.Action(),
		URL:         url,
		Placeholder: url == types.PlaceholderLink,
		Listed:      listsPlatform(p, platform),
	}, nil
}

func statsListHandler(ctx context.Context, _ *mcp.CallToolRequest, source types.CatalogSource) (*mcp.CallToolResult, statsListOutput, error) {
	c, err := source.GetCatalog(ctx)
	if err != nil {
		return errorToolResult("load catalog failed"), statsListOutput{}, nil
	}
	return nil, statsListOutput{Items: dto.FromStats(c.Stats())}, nil
}

func contactsListHandler(ctx context.Context, _ *mcp.CallToolRequest, source types.CatalogSource) (*mcp.CallToolResult, contactsListOutput, error) {
	c, err := source.GetCatalog(ctx)
	if err != nil {
		return errorToolResult("load catalog failed"), contactsListOutput{}, nil
	}
	return nil, contactsListOutput{Items: dto.FromContacts(c.Contacts())}, nil
}

func catalogReloadHandler(ctx context.Context, _ *mcp.CallToolRequest, source types.CatalogSource) (*mcp.CallToolResult, catalogReloadOutput, error) {
	c, supported, err := reload(ctx, source)
	if !supported {
		return errorToolResult("reload is not supported by this source"), catalogReloadOutput{}, nil
	}
	if err != nil {
		return errorToolResult("reload catalog failed: " + err.Error()), catalogReloadOutput{}, nil
	}
	return nil, catalogReloadOutput{Status: "ok", Products: len(c.Products())}, nil
}

func errorToolResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: msg}},
	}
}

func listsPlatform(p types.Product, platform types.Platform) bool {
	for _, v := range p.Platforms() {
		if v == platform {
			return true
		}
	}
	return false
}

func applyLimit(items []types.Product, limit int) []types.Product {
	if limit <= 0 || limit >= len(items) {
		return items
	}
	return items[:limit]
}
