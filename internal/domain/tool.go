package domain

type ToolType string

const (
	ToolTypeLadder     ToolType = "LADDER"
	ToolTypeChainsaw   ToolType = "CHAINSAW"
	ToolTypeJackhammer ToolType = "JACKHAMMER"
)

// Tool is a rentable unit identified by its code. A tool belongs to at most
// one inventory pool.
type Tool struct {
	Code        string   `json:"code"`
	ToolType    ToolType `json:"tool_type"`
	Brand       string   `json:"brand"`
	InventoryID int64    `json:"inventory_id"`
}
