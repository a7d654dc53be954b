package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

var listToolDef = mcp.NewTool("protein_list",
	mcp.WithDescription("List stored proteins with annotation counts, newest first."),
	mcp.WithNumber("limit",
		mcp.Description("Maximum number of proteins to return (default 20, max 100)."),
	),
	mcp.WithNumber("offset",
		mcp.Description("Number of proteins to skip for pagination."),
	),
)

var fetchToolDef = mcp.NewTool("protein_fetch",
	mcp.WithDescription("Fetch a protein by ID, including its extracted sequence and all annotations in insertion order."),
	mcp.WithString("id",
		mcp.Required(),
		mcp.Description("Protein ID as returned by upload or protein_list."),
	),
)

var annotateToolDef = mcp.NewTool("annotation_add",
	mcp.WithDescription("Add a colored label to a residue range of a protein's sequence. Indices are zero-based and inclusive."),
	mcp.WithString("protein_id",
		mcp.Required(),
		mcp.Description("ID of the protein to annotate."),
	),
	mcp.WithNumber("start_index",
		mcp.Required(),
		mcp.Description("First residue of the range (zero-based)."),
	),
	mcp.WithNumber("end_index",
		mcp.Required(),
		mcp.Description("Last residue of the range (inclusive)."),
	),
	mcp.WithString("label",
		mcp.Description("Free-text label for the range."),
	),
	mcp.WithString("color",
		mcp.Required(),
		mcp.Description("CSS color applied to the range, e.g. #ff0000."),
	),
)

var annotationListToolDef = mcp.NewTool("annotation_list",
	mcp.WithDescription("List a protein's annotations in insertion order."),
	mcp.WithString("protein_id",
		mcp.Required(),
		mcp.Description("ID of the protein."),
	),
)
