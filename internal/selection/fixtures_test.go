package selection

func strPtr(s string) *string { return &s }

// testRecords is a small but representative product-system table: two
// distributors, three area types, one roof system without a subtype.
func testRecords() []SystemRecord {
	return []SystemRecord{
		{
			ID: "ps-1", Name: "BaySeal SA", Distributor: "Bayset",
			AreaType: "roof", Substrate: "concrete", Material: "bitumen",
			Insulated: true, Exposure: true, Attachment: "self-adhered",
		},
		{
			ID: "ps-2", Name: "BaySeal TA", Distributor: "Bayset",
			AreaType: "roof", RoofSubtype: strPtr("flat"),
			Substrate: "concrete", Material: "bitumen_torch",
			Insulated: false, Exposure: true, Attachment: "torch-applied",
		},
		{
			ID: "ps-3", Name: "BayDeck Slab", Distributor: "Bayset",
			AreaType: "foundation", FoundationSubtype: strPtr("slab"),
			Substrate: "masonry", Material: "cementitious",
			Insulated: false, Exposure: false, Attachment: "trowel-applied",
		},
		{
			ID: "ps-4", Name: "AquaGuard PU", Distributor: "AquaGuard",
			AreaType: "roof", RoofSubtype: strPtr("pitched"),
			Substrate: "plywood", Material: "polyurethane",
			Insulated: false, Exposure: true, Attachment: "liquid-applied",
		},
		{
			ID: "ps-5", Name: "AquaGuard Tunnel", Distributor: "AquaGuard",
			AreaType: "civil_work", CivilWorkSubtype: strPtr("tunnel"),
			Substrate: "concrete", Material: "hdpe",
			Insulated: false, Exposure: false, Attachment: "mechanically-fixed",
		},
	}
}
