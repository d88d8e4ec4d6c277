package controllers

import (
	"net/http"

	"github.com/storegate/console/api/responses"
	"github.com/storegate/console/pkg/logger"
)

// The admin views serve the console's demo dataset. Business data is an
// external collaborator's concern; these payloads exist so the admin
// route tree has something to render.

// OrderRow is one row of the orders table.
type OrderRow struct {
	ID          string `json:"id"`
	Member      string `json:"member"`
	Store       string `json:"store"`
	ItemsDetail string `json:"items_detail"`
	Total       string `json:"total"`
	Status      string `json:"status"`
	Date        string `json:"date"`
}

// MemberRow is one row of the members table.
type MemberRow struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Store  string `json:"store"`
	Joined string `json:"joined"`
}

// StoreRow is one row of the stores table.
type StoreRow struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	StoreID string `json:"store_id"`
	Members int    `json:"members"`
}

// DashboardStats summarizes the network for the admin landing view.
type DashboardStats struct {
	ApprovedOrders int `json:"approved_orders"`
	TotalStores    int `json:"total_stores"`
	TotalMembers   int `json:"total_members"`
	PendingOrders  int `json:"pending_orders"`
}

var demoOrders = []OrderRow{
	{ID: "#rder-1", Member: "John Smith", Store: "Downtown Store", ItemsDetail: "Product 1", Total: "$56.00", Status: "pending", Date: "May 19, 2025"},
	{ID: "#rder-2", Member: "Sarah Johnson", Store: "Mall Location", ItemsDetail: "Product 2", Total: "$318.00", Status: "approved", Date: "May 15, 2025"},
	{ID: "#rder-3", Member: "Mike Wilson", Store: "Airport Branch", ItemsDetail: "Product 3", Total: "$80.00", Status: "rejected", Date: "May 3, 2025"},
}

var demoMembers = []MemberRow{
	{ID: "1", Name: "John Smith", Email: "john@store1.com", Store: "Downtown Store", Joined: "2024-01-15"},
	{ID: "2", Name: "Sarah Johnson", Email: "sarah@store2.com", Store: "Mall Location", Joined: "2024-01-20"},
	{ID: "3", Name: "Mike Wilson", Email: "mike@store1.com", Store: "Downtown Store", Joined: "2024-02-01"},
}

var demoStores = []StoreRow{
	{ID: "1", Name: "Downtown Store", StoreID: "DS001", Members: 5},
	{ID: "2", Name: "Mall Location", StoreID: "ML002", Members: 8},
	{ID: "3", Name: "Airport Branch", StoreID: "AB003", Members: 3},
	{ID: "4", Name: "Suburban Center", StoreID: "SC004", Members: 6},
}

// AdminDashboard serves the admin landing view model.
func AdminDashboard(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats := DashboardStats{TotalStores: len(demoStores), TotalMembers: len(demoMembers)}
		for _, order := range demoOrders {
			switch order.Status {
			case "approved":
				stats.ApprovedOrders++
			case "pending":
				stats.PendingOrders++
			}
		}
		responses.WriteSuccess(w, map[string]any{
			"stats":         stats,
			"recent_orders": demoOrders[:2],
		})
	}
}

// AdminOrders serves the orders table view model.
func AdminOrders(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, demoOrders)
	}
}

// AdminMembers serves the members table view model.
func AdminMembers(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, demoMembers)
	}
}

// AdminStores serves the stores table view model.
func AdminStores(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, demoStores)
	}
}
