package handler

import "encoding/json"

// --- Request types ---

type createAuditRequest struct {
	Type    string          `json:"type"    validate:"required,oneof=Dealer HOA Industrial"`
	Data    json.RawMessage `json:"data"    validate:"required"`
	Summary string          `json:"summary" validate:"required"`
}

// Per-archetype payload shapes. Fields are pointers so a present zero passes
// while a missing field fails `required`. Extra fields the dashboard adds
// (and the derived figure it embeds) are accepted and persisted verbatim;
// only the fields below are actually checked.

type dealerAuditPayload struct {
	DailyOutput  *float64 `json:"dailyOutput"  validate:"required,gte=0"`
	SellingPrice *float64 `json:"sellingPrice" validate:"required,gte=0"`
	Electricity  *float64 `json:"electricity"  validate:"required,gte=0"`
	Rent         *float64 `json:"rent"         validate:"required,gte=0"`
	Labor        *float64 `json:"labor"        validate:"required,gte=0"`
	Maint        *float64 `json:"maint"        validate:"required,gte=0"`
	DaysOpen     *float64 `json:"daysOpen"     validate:"required,gte=0"`
	NetProfit    *float64 `json:"netProfit"`
}

type hoaAuditPayload struct {
	Units             *float64 `json:"units"             validate:"required,gte=0"`
	DeliveriesPerUnit *float64 `json:"deliveriesPerUnit" validate:"required,gte=0"`
	DeliveryRisk      string   `json:"deliveryRisk"`
	WaterSource       string   `json:"waterSource"`
	WastePerUnit      *float64 `json:"wastePerUnit"`
	Complaints        *float64 `json:"complaints"`
}

type industrialAuditPayload struct {
	DowntimeCost *float64 `json:"downtimeCost" validate:"required,gte=0"`
	RepairTime   *float64 `json:"repairTime"   validate:"required,gte=0"`
	Reliability  string   `json:"reliability"  validate:"required,oneof=Low Medium High"`
	Type         string   `json:"type"`
	Risk         *float64 `json:"risk"`
}
