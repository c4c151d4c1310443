// internal/seed/defaults.go

// Package seed carries the default FCC implementation configuration: the
// scoping taxonomy, effort template, tier thresholds, role catalog and
// allocation matrix installed by the seed tool.
package seed

import (
	"github.com/shopspring/decimal"

	"github.com/Navashanmugam888/engagement-scoping-tool/internal/models"
)

func d(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

func item(id, label string, hasCount bool, weight, countWeight float64, sub ...models.ScopingItem) models.ScopingItem {
	return models.ScopingItem{
		ID:          id,
		Label:       label,
		HasCount:    hasCount,
		Weight:      d(weight),
		CountWeight: d(countWeight),
		SubItems:    sub,
	}
}

// Taxonomy returns the default FCC scoping item tree.
func Taxonomy() *models.Taxonomy {
	return &models.Taxonomy{
		Sections: []models.Section{
			{Title: "Dimensions", Items: []models.ScopingItem{
				item("account", "Account", true, 4, 0.5,
					item("acc_alt_hier", "Account Alternate Hierarchies", true, 2, 1),
					item("rat_coa", "Rationalization of CoA", false, 6, 0),
				),
				item("multi_curr", "Multi-Currency", true, 2, 0.5),
				item("rep_curr", "Reporting Currency", true, 1, 0.5),
				item("entity", "Entity", true, 3, 0.5,
					item("ent_redesign", "Entity Redesign", false, 4, 0),
					item("ent_alt_hier", "Entity Alternate Hierarchies", true, 2, 1),
				),
				item("scenario", "Scenario", true, 1, 0.5),
				item("multi_gaap", "Multi-GAAP", false, 3, 0),
				item("cust_dim", "Custom Dimensions", true, 2, 1,
					item("alt_hier_cust", "Alternate Hierarchies in Custom Dimensions", true, 2, 1),
				),
				item("add_alias", "Additional Alias Tables", true, 1, 0.5),
			}},
			{Title: "Application Features", Items: []models.ScopingItem{
				item("elim", "Elimination", false, 1, 0),
				item("cust_elim", "Custom Elimination Requirement", false, 4, 0),
				item("consol_journ", "Consolidation Journals", false, 2, 0,
					item("journ_temp", "Journal Templates", true, 1, 0.5),
					item("parent_curr", "Parent Currency Journals", false, 2, 0),
				),
				item("own_mgmt", "Ownership Management", false, 4, 0,
					item("enh_org", "Enhanced Organization by Period", false, 3, 0),
					item("equity_pickup", "Equity Pickup", false, 4, 0),
					item("partner_elim", "Partner Elimination", false, 4, 0),
					item("config_consol", "Configurable Consolidation Rules", false, 5, 0),
				),
				item("cash_flow", "Cash Flow", false, 4, 0),
				item("supp_data", "Supplemental Data Collection", false, 4, 0),
				item("ent_journ", "Enterprise Journals", false, 4, 0),
				item("approval", "Approval Process", false, 3, 0),
				item("hist_over", "Historic Overrides", false, 2, 0),
				item("task_mgr", "Task Manager", false, 3, 0),
				item("audit", "Audit", false, 1, 0),
			}},
			{Title: "Application Customization", Items: []models.ScopingItem{
				item("data_forms", "Data Forms", true, 1, 0.5),
				item("dashboards", "Dashboards", true, 1, 0.5),
			}},
			{Title: "Calculations", Items: []models.ScopingItem{
				item("bus_rules", "Business Rules", true, 3, 1),
				item("mem_form", "Member Formula", true, 1, 0.5),
				item("ratios", "Ratios", false, 2, 0),
				item("cust_kpi", "Custom KPIs", false, 2, 0),
			}},
			{Title: "Security", Items: []models.ScopingItem{
				item("sec_dim", "Secured Dimensions", true, 2, 0.5),
				item("num_users", "Number of Users", true, 0, 0.1),
			}},
			{Title: "Historical Data", Items: []models.ScopingItem{
				item("hist_data", "Historical Data Validation", true, 4, 1),
				item("val_acc_alt", "Data Validation for Account Alt Hierarchies", false, 5, 0),
				item("val_ent_alt", "Data Validation for Entity Alt Hierarchies", false, 5, 0),
				item("hist_journ", "Historical Journal Conversion", false, 5, 0),
			}},
			{Title: "Integrations", Items: []models.ScopingItem{
				item("file_load", "Files Based Loads", true, 5, 2),
				item("direct_conn", "Direct Connect Integrations", true, 5, 2),
				item("outbound", "Outbound Integrations", true, 5, 2),
				item("pipeline", "Pipeline", true, 5, 2),
				item("cust_script", "Custom Scripting", true, 6, 2),
			}},
			{Title: "Reporting", Items: []models.ScopingItem{
				item("mgmt_rep", "Management Reports", true, 2, 1),
				item("consol_rep", "Consolidation Reports", false, 2, 0),
				item("consol_journ_rep", "Consolidation Journal Reports", true, 2, 1),
				item("inter_rep", "Intercompany Reports", true, 2, 1),
				item("task_rep", "Task Manager Reports", false, 2, 0),
				item("ent_journ_rep", "Enterprise Journal Reports", false, 2, 0),
				item("smart_view", "Smart View Reports", true, 2, 1),
			}},
			{Title: "Automations", Items: []models.ScopingItem{
				item("auto_load", "Automated Data Loads", false, 3, 0),
				item("auto_consol", "Automated Consolidations", false, 2, 0),
				item("backup", "Backup and Archival", false, 2, 0),
				item("meta_imp", "Metadata Import", false, 3, 0),
			}},
			{Title: "Testing / Training", Items: []models.ScopingItem{
				item("unit_test", "Unit Testing", false, 3, 0),
				item("uat", "UAT", false, 3, 0),
				item("sit", "SIT", false, 2, 0),
				item("par_test", "Parallel Testing", true, 4, 1),
				item("user_train", "User Training", false, 2, 0),
			}},
			{Title: "Transition", Items: []models.ScopingItem{
				item("go_live", "Go Live", false, 3, 0),
				item("hypercare", "Hypercare", false, 3, 0),
			}},
			{Title: "Documentations", Items: []models.ScopingItem{
				item("rtm", "RTM", false, 1, 0),
				item("design_doc", "Design Document", false, 1, 0),
				item("sys_config", "System Configuration Document", false, 1, 0),
			}},
			{Title: "Change Management", Items: []models.ScopingItem{
				item("admin_proc", "Admin Desktop Procedures", false, 1, 0),
				item("end_user_proc", "End User Desktop Procedures", false, 1, 0),
			}},
			{Title: "Project Management", Items: []models.ScopingItem{
				item("proj_mgmt", "Project Management", false, 1, 0),
			}},
		},
		SectionAliases: map[string]string{
			"Dimensions":           "Build and Configure FCC",
			"Application Features": "Setup Application Features",
			"Testing / Training":   "Testing/Training",
			"Project Management":   "Project Initiation and Planning",
		},
	}
}

// Template returns the default effort baseline per category with its task
// breakdown in hours.
func Template() *models.EffortTemplate {
	cat := func(name string, baseline float64, tasks map[string]float64) models.EffortCategory {
		sub := make(map[string]decimal.Decimal, len(tasks))
		for t, h := range tasks {
			sub[t] = d(h)
		}
		return models.EffortCategory{Name: name, BaselineHours: d(baseline), Subtasks: sub}
	}
	return &models.EffortTemplate{Categories: []models.EffortCategory{
		cat("Project Initiation and Planning", 12, map[string]float64{
			"Kickoff Meetings": 1, "Project Governance": 1, "Communication Plan": 1,
			"Resource Allocation": 2, "RAID Log": 1, "Project Plan": 4,
			"Plan Status Meetings and SteerCo Meeting Schedule": 2,
		}),
		cat("Creating and Managing EPM Cloud Infrastructure", 6, map[string]float64{
			"Creating and Setting up Oracle EPM Cloud instances": 2,
			"Prelim FCC User Provisioning":                       4,
		}),
		cat("Requirement Gathering, Read back and Client Sign-off", 32, map[string]float64{
			"Requirement Gathering Sessions": 8, "Current CoA details": 4,
			"CoA Hierarchies": 4, "Current Consolidation Model": 4, "Sample Reports": 2,
			"Dimension Details": 4, "Develop Requirement Treaceability Matrix": 4,
			"Formal RTM Signoff": 2,
		}),
		cat("Design", 26, map[string]float64{
			"Design Document": 8, "Key Design Decision Document": 8,
			"Internal Peer Review": 4, "Design and KDD Reviews": 4,
			"Design Approval from Client": 2,
		}),
		cat("Build and Configure FCC", 88, map[string]float64{
			"Application Configuration": 2, "Account": 16,
			"Account Alternate Hierarchies": 8, "Rationalization of CoA": 24,
			"Multi Currency": 1, "Reporting Currency": 0.5, "Data Source": 0.5,
			"Entity": 8, "Entity Redesign": 8, "Entity Alternate Hierarchies": 4,
			"Movement": 4, "Scenario": 1, "Multi-GAAP": 2, "Custom Dimensions": 4,
			"Alternate Hierarchies in Custom Dimensions": 4, "Additional Alias Tables": 1,
		}),
		cat("Setup Application Features", 79.5, map[string]float64{
			"Elimination": 0.5, "Consolidation Journals": 1, "Journal Templates": 1,
			"Ownership Management": 4, "Enhanced Organization by Period": 4,
			"Equity Pickup": 8, "Partner Elimination": 8,
			"Configurable Consolidation Rules": 8, "Cash Flow": 8,
			"Supplemental Data Collection": 8, "Enterprise Journals": 8,
			"Approval Process": 8, "Historic Overrides": 4, "Task Manager": 8, "Audit": 1,
		}),
		cat("Application Customization", 8, map[string]float64{
			"Data Forms": 4, "Dashboards": 4,
		}),
		cat("Calculations", 15, map[string]float64{
			"Business Rules": 8, "Member Formula": 1, "Ratios": 4, "Custom KPIs": 2,
		}),
		cat("Security", 4, map[string]float64{
			"Secured Dimensions": 2, "Number of Users": 2,
		}),
		cat("Historical Data", 60, map[string]float64{
			"Historical Data Validation":                  0,
			"Data Validation for Account Alt Hierarchies": 20,
			"Data Validation for Entity Alt Hierarchies":  20,
			"Historical Journal Conversion":               20,
		}),
		cat("Integrations", 80, map[string]float64{
			"Files Based Loads": 16, "Direct Connect Integrations": 16,
			"Outbound Integrations": 16, "Pipeline": 16, "Custom Scripting": 16,
		}),
		cat("Reporting", 40, map[string]float64{
			"Management Reports": 8, "Consolidation Reports": 4,
			"Consolidation Journal Reports": 4, "Intercompany Reports": 8,
			"Task Manager Reports": 4, "Enterprise Journal Reports": 4,
			"Smart View Reports": 8,
		}),
		cat("Automations", 52, map[string]float64{
			"Automated Data loads": 16, "Automated Consolidations": 8,
			"Backup and Archival": 12, "Metadata Import": 16,
		}),
		cat("Testing/Training", 152, map[string]float64{
			"Unit Testing": 40, "UAT": 40, "SIT": 16, "Parallel Testing": 40,
			"User Training": 16,
		}),
		cat("Transition", 80, map[string]float64{
			"Go Live": 40, "Hypercare": 40,
		}),
		cat("Documentations", 24, map[string]float64{
			"RTM": 8, "Design Document": 8, "System Configuration Document": 8,
		}),
		cat("Change Management", 32, map[string]float64{
			"Admin Desktop Procedures": 16, "End user Desktop Procedures": 16,
		}),
	}}
}

// Tiers returns the default contiguous tier bands with their effort
// multipliers. The last band's ceiling is an unbounded sentinel.
func Tiers() *models.TierTable {
	return &models.TierTable{Bands: []models.TierBand{
		{Name: "Tier 1 - Jumpstart", MinWeightage: 0, MaxWeightage: 60, EffortMultiplier: d(1.0)},
		{Name: "Tier 2 - Foundation Plus", MinWeightage: 61, MaxWeightage: 100, EffortMultiplier: d(1.1)},
		{Name: "Tier 3 - Enhanced Scope", MinWeightage: 101, MaxWeightage: 150, EffortMultiplier: d(1.25)},
		{Name: "Tier 4 - Advanced Enablement", MinWeightage: 151, MaxWeightage: 200, EffortMultiplier: d(1.4)},
		{Name: "Tier 5 - Full Spectrum", MinWeightage: 201, MaxWeightage: 999999, EffortMultiplier: d(1.6)},
	}}
}

// Roles returns the default role catalog.
func Roles() *models.RoleCatalog {
	return &models.RoleCatalog{Roles: []models.Role{
		{ID: "pm_usa", RoleName: "PM USA", Location: "USA"},
		{ID: "pm_india", RoleName: "PM India", Location: "India"},
		{ID: "architect_usa", RoleName: "Architect USA", Location: "USA"},
		{ID: "sr_delivery_lead_india", RoleName: "Sr. Delivery Lead India", Location: "India"},
		{ID: "delivery_lead_india", RoleName: "Delivery Lead India", Location: "India"},
		{ID: "app_lead_usa", RoleName: "App Lead USA", Location: "USA"},
		{ID: "app_lead_india", RoleName: "App Lead India", Location: "India"},
		{ID: "app_developer_usa", RoleName: "App Developer USA", Location: "USA"},
		{ID: "app_developer_india", RoleName: "App Developer India", Location: "India"},
		{ID: "integration_lead_usa", RoleName: "Integration Lead USA", Location: "USA"},
		{ID: "integration_developer_india", RoleName: "Integration Developer India", Location: "India"},
		{ID: "reporting_lead_india", RoleName: "Reporting Lead India", Location: "India"},
		{ID: "security_lead_india", RoleName: "Security Lead India", Location: "India"},
	}}
}

// Matrix returns the default per-category role allocation percentages.
func Matrix() *models.AllocationMatrix {
	// Shorthand per role id, in catalog order.
	row := func(pmU, pmI, arch, srDL, dl, alU, alI, adU, adI, ilU, idI, rep, sec float64) map[string]decimal.Decimal {
		return map[string]decimal.Decimal{
			"pm_usa":                      d(pmU),
			"pm_india":                    d(pmI),
			"architect_usa":               d(arch),
			"sr_delivery_lead_india":      d(srDL),
			"delivery_lead_india":         d(dl),
			"app_lead_usa":                d(alU),
			"app_lead_india":              d(alI),
			"app_developer_usa":           d(adU),
			"app_developer_india":         d(adI),
			"integration_lead_usa":        d(ilU),
			"integration_developer_india": d(idI),
			"reporting_lead_india":        d(rep),
			"security_lead_india":         d(sec),
		}
	}
	return &models.AllocationMatrix{Allocations: map[string]map[string]decimal.Decimal{
		"Project Initiation and Planning":                      row(50, 50, 100, 50, 50, 0, 0, 0, 0, 0, 0, 0, 0),
		"Creating and Managing EPM Cloud Infrastructure":       row(50, 50, 0, 50, 50, 100, 100, 0, 0, 0, 0, 0, 0),
		"Requirement Gathering, Read back and Client Sign-off": row(50, 50, 100, 50, 50, 100, 100, 0, 0, 20, 20, 0, 0),
		"Design":                                               row(50, 50, 100, 50, 50, 100, 100, 0, 0, 20, 20, 0, 0),
		"Build and Configure FCC":                              row(50, 50, 20, 50, 50, 100, 100, 100, 100, 0, 0, 0, 0),
		"Setup Application Features":                           row(50, 50, 20, 50, 50, 100, 100, 100, 100, 0, 0, 0, 0),
		"Application Customization":                            row(50, 50, 20, 50, 50, 100, 100, 100, 100, 0, 0, 0, 0),
		"Calculations":                                         row(50, 50, 20, 50, 50, 100, 100, 100, 100, 0, 0, 0, 0),
		"Security":                                             row(50, 50, 20, 50, 50, 100, 100, 100, 100, 20, 20, 0, 100),
		"Historical Data":                                      row(50, 50, 20, 50, 50, 100, 100, 100, 100, 0, 0, 0, 0),
		"Integrations":                                         row(50, 50, 20, 50, 50, 100, 100, 100, 100, 100, 100, 0, 0),
		"Reporting":                                            row(50, 50, 20, 50, 50, 100, 100, 100, 100, 0, 0, 100, 0),
		"Automations":                                          row(50, 50, 20, 50, 50, 100, 100, 100, 100, 100, 100, 0, 0),
		"Testing/Training":                                     row(50, 50, 20, 50, 50, 100, 100, 100, 100, 50, 50, 20, 0),
		"Transition":                                           row(50, 50, 20, 50, 50, 100, 100, 100, 100, 50, 50, 0, 0),
		"Documentations":                                       row(50, 50, 20, 50, 50, 100, 100, 100, 100, 50, 50, 0, 0),
		"Change Management":                                    row(50, 50, 20, 50, 50, 100, 100, 100, 100, 50, 50, 0, 0),
	}}
}
