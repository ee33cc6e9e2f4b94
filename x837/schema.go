package x837

import (
	"github.com/dshills/x12/model"
	"github.com/dshills/x12/schema"
)

// Schema builds the segment schema table for the content segments the 837
// loop-start rules read qualifiers from, plus the other data-carrying
// segments a claim commonly contains. It does not attempt to enumerate the
// full ~80-segment catalog models.py's X12SegmentName lists: only the
// segments this implementation guide's loop structure and its common
// supporting content actually use are registered, which keeps the table
// proportional to what the rule registry and tests exercise rather than
// a speculative exhaustive transcription.
func Schema() schema.Table {
	t := schema.NewTable()

	t.Register(schema.SegmentSchema{Name: "NM1", Fields: []schema.FieldSchema{
		{Type: model.TypeEnum, Required: true, Enum: []string{
			"41", "40", "85", "87", "PE", "IL", "PR", "QC", "DN", "P3", "82", "77", "DQ",
			"PW", "45", "QB", "DK",
		}}, // 01 entity_identifier_code
		{Type: model.TypeEnum, Enum: []string{"1", "2"}}, // 02 entity_type_qualifier
		{Type: model.TypeString, MaxLen: 60},             // 03 name_last_or_organization_name
		{Type: model.TypeString, MaxLen: 35},              // 04 name_first
		{Type: model.TypeString, MaxLen: 25},              // 05 name_middle
		{Type: model.TypeString, MaxLen: 10},              // 06 name_prefix
		{Type: model.TypeString, MaxLen: 10},              // 07 name_suffix
		{Type: model.TypeString, MaxLen: 2},                // 08 identification_code_qualifier
		{Type: model.TypeString, MaxLen: 80},               // 09 identification_code
	}})

	t.Register(schema.SegmentSchema{Name: "HL", Fields: []schema.FieldSchema{
		{Type: model.TypeString, Required: true},                         // 01 hierarchical_id_number
		{Type: model.TypeString},                                         // 02 hierarchical_parent_id_number
		{Type: model.TypeEnum, Required: true, Enum: []string{"20", "22", "23"}}, // 03 hierarchical_level_code
		{Type: model.TypeEnum, Enum: []string{"0", "1"}},                 // 04 hierarchical_child_code
	}})

	t.Register(schema.SegmentSchema{Name: "CLM", Fields: []schema.FieldSchema{
		{Type: model.TypeString, Required: true, MaxLen: 38}, // 01 claim_submitter_identifier
		{Type: model.TypeDecimal, Required: true},            // 02 monetary_amount
		{},                                                    // 03 unused
		{},                                                    // 04 unused
		{Type: model.TypeString, IsComponentField: true, Components: []schema.FieldSchema{
			{Type: model.TypeString}, {Type: model.TypeString}, {Type: model.TypeString},
		}}, // 05 health_care_service_location_information
		{Type: model.TypeEnum, Enum: []string{"Y", "N"}},      // 06 provider_signature_indicator
		{Type: model.TypeEnum, Enum: []string{"A", "B", "C"}}, // 07 assignment_or_plan_participation_code
		{Type: model.TypeEnum, Enum: []string{"Y", "N", "W"}}, // 08 benefits_assignment_certification_indicator
		{Type: model.TypeEnum, Enum: []string{"Y", "I"}},      // 09 release_of_information_code
	}})

	t.Register(schema.SegmentSchema{Name: "SBR", Fields: []schema.FieldSchema{
		{Type: model.TypeEnum, Required: true, Enum: []string{"P", "S", "T", "A", "B", "C", "D", "E", "F", "G", "H"}}, // 01 payer_responsibility_sequence_number_code
		{Type: model.TypeString},         // 02 individual_relationship_code
		{Type: model.TypeString},         // 03 reference_identification
		{Type: model.TypeString},         // 04 name
		{Type: model.TypeString},         // 05 insurance_type_code
		{}, {}, {},                        // 06-08 unused
		{Type: model.TypeString},         // 09 claim_filing_indicator_code
	}})

	t.Register(schema.SegmentSchema{Name: "LX", Fields: []schema.FieldSchema{
		{Type: model.TypeInteger, Required: true}, // 01 assigned_number
	}})

	t.Register(schema.SegmentSchema{Name: "LIN", Fields: []schema.FieldSchema{
		{Type: model.TypeString},                  // 01 assigned_number
		{Type: model.TypeString, Required: true},  // 02 product_service_id_qualifier
		{Type: model.TypeString, Required: true},  // 03 product_service_id
	}})

	t.Register(schema.SegmentSchema{Name: "SVD", Fields: []schema.FieldSchema{
		{Type: model.TypeString, Required: true}, // 01 other_payer_primary_identifier
		{Type: model.TypeDecimal, Required: true}, // 02 monetary_amount
		{Type: model.TypeString, Required: true, IsComponentField: true, Components: []schema.FieldSchema{
			{Type: model.TypeString}, {Type: model.TypeString},
		}}, // 03 composite_medical_procedure_identifier
		{Type: model.TypeString},          // 04 product_or_service_id
		{Type: model.TypeDecimal},         // 05 units_of_service_paid_count
		{Type: model.TypeInteger},         // 06 bundled_or_unbundled_line_number
	}})

	t.Register(schema.SegmentSchema{Name: "SV1", Fields: []schema.FieldSchema{
		{Type: model.TypeString, Required: true, IsComponentField: true, Components: []schema.FieldSchema{
			{Type: model.TypeString}, {Type: model.TypeString},
		}}, // 01 composite_medical_procedure_identifier
		{Type: model.TypeDecimal, Required: true}, // 02 monetary_amount (line charge)
		{Type: model.TypeString, Required: true},  // 03 unit_or_basis_for_measurement_code
		{Type: model.TypeDecimal, Required: true},  // 04 quantity (units)
		{},                                         // 05 facility_code_value
		{},                                         // 06 service_type_code
		{Type: model.TypeString, IsComponentField: true, Components: []schema.FieldSchema{
			{Type: model.TypeString},
		}}, // 07 composite_diagnosis_code_pointer
	}})

	t.Register(schema.SegmentSchema{Name: "LQ", Fields: []schema.FieldSchema{
		{Type: model.TypeString, Required: true}, // 01 code_list_qualifier_code
		{Type: model.TypeString},                 // 02 industry_code
	}})

	t.Register(schema.SegmentSchema{Name: "BHT", Fields: []schema.FieldSchema{
		{Type: model.TypeString, Required: true},                      // 01 hierarchical_structure_code
		{Type: model.TypeEnum, Required: true, Enum: []string{"00", "18"}}, // 02 transaction_set_purpose_code
		{Type: model.TypeString, Required: true},                      // 03 originator_application_transaction_identifier
		{Type: model.TypeDate, Required: true},                        // 04 transaction_set_creation_date
		{Type: model.TypeTimeString},                                  // 05 transaction_set_creation_time
		{Type: model.TypeEnum, Enum: []string{"CH", "RP"}},            // 06 transaction_type_code
	}})

	t.Register(schema.SegmentSchema{Name: "REF", Fields: []schema.FieldSchema{
		{Type: model.TypeString, Required: true}, // 01 reference_identification_qualifier
		{Type: model.TypeString, Required: true}, // 02 reference_identification
	}})

	t.Register(schema.SegmentSchema{Name: "DTP", Fields: []schema.FieldSchema{
		{Type: model.TypeString, Required: true},                          // 01 date_time_qualifier
		{Type: model.TypeEnum, Required: true, Enum: []string{"D8", "RD8", "TM"}}, // 02 date_time_period_format_qualifier
		{Type: model.TypeString, Required: true},                          // 03 date_time_period
	}})

	t.Register(schema.SegmentSchema{Name: "N3", Fields: []schema.FieldSchema{
		{Type: model.TypeString, Required: true}, // 01 address_line_1
		{Type: model.TypeString},                 // 02 address_line_2
	}})

	t.Register(schema.SegmentSchema{Name: "N4", Fields: []schema.FieldSchema{
		{Type: model.TypeString}, // 01 city_name
		{Type: model.TypeString}, // 02 state_or_province_code
		{Type: model.TypeString}, // 03 postal_code
	}})

	t.Register(schema.SegmentSchema{Name: "PER", Fields: []schema.FieldSchema{
		{Type: model.TypeString, Required: true}, // 01 contact_function_code
		{Type: model.TypeString},                 // 02 name
		{Type: model.TypeString},                 // 03 communication_number_qualifier
		{Type: model.TypeString},                 // 04 communication_number
	}})

	t.Register(schema.SegmentSchema{Name: "AMT", Fields: []schema.FieldSchema{
		{Type: model.TypeString, Required: true},  // 01 amount_qualifier_code
		{Type: model.TypeDecimal, Required: true}, // 02 monetary_amount
	}})

	t.Register(schema.SegmentSchema{Name: "CAS", Fields: []schema.FieldSchema{
		{Type: model.TypeEnum, Required: true, Enum: []string{"CO", "OA", "PI", "PR"}}, // 01 claim_adjustment_group_code
		{Type: model.TypeString, Required: true},                                      // 02 claim_adjustment_reason_code
		{Type: model.TypeDecimal, Required: true},                                      // 03 monetary_amount
	}})

	t.Register(schema.SegmentSchema{Name: "DMG", Fields: []schema.FieldSchema{
		{Type: model.TypeEnum, Enum: []string{"D8"}}, // 01 date_time_period_format_qualifier
		{Type: model.TypeDate},                       // 02 date_time_period
		{Type: model.TypeEnum, Enum: []string{"M", "F", "U"}}, // 03 gender_code
	}})

	t.Register(schema.SegmentSchema{Name: "TRN", Fields: []schema.FieldSchema{
		{Type: model.TypeString, Required: true}, // 01 trace_type_code
		{Type: model.TypeString, Required: true}, // 02 reference_identification
	}})

	t.Register(schema.SegmentSchema{Name: "HI", Fields: []schema.FieldSchema{
		{Type: model.TypeString, Required: true, IsComponentField: true, Components: []schema.FieldSchema{
			{Type: model.TypeString, Required: true}, {Type: model.TypeString, Required: true},
		}}, // 01 health_care_code_information
	}})

	return t
}
