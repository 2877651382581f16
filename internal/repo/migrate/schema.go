// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BiologistsColumns holds the columns for the "biologists" table.
	BiologistsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "first_name", Type: field.TypeString, Size: 100},
		{Name: "last_name", Type: field.TypeString, Size: 100},
		{Name: "username", Type: field.TypeString, Unique: true, Size: 50},
		{Name: "email", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "phone_number", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "password_hash", Type: field.TypeString},
	}
	// BiologistsTable holds the schema information for the "biologists" table.
	BiologistsTable = &schema.Table{
		Name:       "biologists",
		Columns:    BiologistsColumns,
		PrimaryKey: []*schema.Column{BiologistsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "biologist_username",
				Unique:  false,
				Columns: []*schema.Column{BiologistsColumns[5]},
			},
			{
				Name:    "biologist_email",
				Unique:  false,
				Columns: []*schema.Column{BiologistsColumns[6]},
			},
		},
	}
	// BloodBagsColumns holds the columns for the "blood_bags" table.
	BloodBagsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "bag_number", Type: field.TypeString, Unique: true, Size: 50},
		{Name: "blood_group", Type: field.TypeString, Size: 5},
		{Name: "donation_id", Type: field.TypeString, Size: 50},
		{Name: "bag_type", Type: field.TypeString, Size: 50},
		{Name: "weight", Type: field.TypeFloat64},
		{Name: "collection_date", Type: field.TypeTime},
		{Name: "expire_date", Type: field.TypeTime},
		{Name: "hbs_ag", Type: field.TypeString, Size: 20},
		{Name: "hcv", Type: field.TypeString, Size: 20},
		{Name: "hiv", Type: field.TypeString, Size: 20},
		{Name: "tpha", Type: field.TypeString, Size: 20},
		{Name: "anti_htlv", Type: field.TypeString, Size: 20},
		{Name: "is_distributed", Type: field.TypeBool, Default: false},
		{Name: "biologist_id", Type: field.TypeUUID},
	}
	// BloodBagsTable holds the schema information for the "blood_bags" table.
	BloodBagsTable = &schema.Table{
		Name:       "blood_bags",
		Columns:    BloodBagsColumns,
		PrimaryKey: []*schema.Column{BloodBagsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "blood_bags_biologists_blood_bags",
				Columns:    []*schema.Column{BloodBagsColumns[16]},
				RefColumns: []*schema.Column{BiologistsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "bloodbag_bag_number",
				Unique:  false,
				Columns: []*schema.Column{BloodBagsColumns[3]},
			},
			{
				Name:    "bloodbag_biologist_id",
				Unique:  false,
				Columns: []*schema.Column{BloodBagsColumns[16]},
			},
			{
				Name:    "bloodbag_is_distributed_expire_date",
				Unique:  false,
				Columns: []*schema.Column{BloodBagsColumns[15], BloodBagsColumns[9]},
			},
		},
	}
	// ChefServicesColumns holds the columns for the "chef_services" table.
	ChefServicesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "first_name", Type: field.TypeString, Size: 100},
		{Name: "last_name", Type: field.TypeString, Size: 100},
		{Name: "username", Type: field.TypeString, Unique: true, Size: 50},
		{Name: "email", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "password_hash", Type: field.TypeString},
	}
	// ChefServicesTable holds the schema information for the "chef_services" table.
	ChefServicesTable = &schema.Table{
		Name:       "chef_services",
		Columns:    ChefServicesColumns,
		PrimaryKey: []*schema.Column{ChefServicesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "chefservice_username",
				Unique:  false,
				Columns: []*schema.Column{ChefServicesColumns[5]},
			},
		},
	}
	// ComponentsColumns holds the columns for the "components" table.
	ComponentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"cps", "pfc", "cg"}},
		{Name: "weight", Type: field.TypeFloat64},
		{Name: "expire_date", Type: field.TypeTime},
		{Name: "is_distributed", Type: field.TypeBool, Default: false},
		{Name: "bagblood_id", Type: field.TypeUUID},
	}
	// ComponentsTable holds the schema information for the "components" table.
	ComponentsTable = &schema.Table{
		Name:       "components",
		Columns:    ComponentsColumns,
		PrimaryKey: []*schema.Column{ComponentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "components_blood_bags_components",
				Columns:    []*schema.Column{ComponentsColumns[7]},
				RefColumns: []*schema.Column{BloodBagsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "component_bagblood_id",
				Unique:  false,
				Columns: []*schema.Column{ComponentsColumns[7]},
			},
			{
				Name:    "component_type",
				Unique:  false,
				Columns: []*schema.Column{ComponentsColumns[3]},
			},
			{
				Name:    "component_type_expire_date",
				Unique:  false,
				Columns: []*schema.Column{ComponentsColumns[3], ComponentsColumns[5]},
			},
		},
	}
	// DistributionsColumns holds the columns for the "distributions" table.
	DistributionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "distribution_number", Type: field.TypeString, Size: 50},
		{Name: "receiver_first_name", Type: field.TypeString, Size: 100},
		{Name: "receiver_last_name", Type: field.TypeString, Size: 100},
		{Name: "receiver_age", Type: field.TypeInt},
		{Name: "receiver_sex", Type: field.TypeString, Size: 10},
		{Name: "establishment", Type: field.TypeString, Size: 255},
		{Name: "requested_blood_group", Type: field.TypeString, Size: 5},
		{Name: "number_of_bags", Type: field.TypeInt},
		{Name: "service", Type: field.TypeString, Size: 100},
		{Name: "carrier_name", Type: field.TypeString, Size: 255},
		{Name: "doctor_name", Type: field.TypeString, Size: 255},
		{Name: "issued_at", Type: field.TypeTime},
		{Name: "bagblood_id", Type: field.TypeUUID},
	}
	// DistributionsTable holds the schema information for the "distributions" table.
	DistributionsTable = &schema.Table{
		Name:       "distributions",
		Columns:    DistributionsColumns,
		PrimaryKey: []*schema.Column{DistributionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "distributions_blood_bags_distributions",
				Columns:    []*schema.Column{DistributionsColumns[15]},
				RefColumns: []*schema.Column{BloodBagsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "distribution_bagblood_id",
				Unique:  false,
				Columns: []*schema.Column{DistributionsColumns[15]},
			},
			{
				Name:    "distribution_distribution_number",
				Unique:  false,
				Columns: []*schema.Column{DistributionsColumns[3]},
			},
		},
	}
	// YearlyStatsColumns holds the columns for the "yearly_stats" table.
	YearlyStatsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "year", Type: field.TypeInt, Unique: true},
		{Name: "total_bags", Type: field.TypeInt, Default: 0},
		{Name: "total_cps", Type: field.TypeInt, Default: 0},
		{Name: "total_pfc", Type: field.TypeInt, Default: 0},
		{Name: "total_cg", Type: field.TypeInt, Default: 0},
		{Name: "total_expired", Type: field.TypeInt, Default: 0},
		{Name: "recorded_by", Type: field.TypeUUID, Nullable: true},
	}
	// YearlyStatsTable holds the schema information for the "yearly_stats" table.
	YearlyStatsTable = &schema.Table{
		Name:       "yearly_stats",
		Columns:    YearlyStatsColumns,
		PrimaryKey: []*schema.Column{YearlyStatsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "yearlystat_year",
				Unique:  false,
				Columns: []*schema.Column{YearlyStatsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BiologistsTable,
		BloodBagsTable,
		ChefServicesTable,
		ComponentsTable,
		DistributionsTable,
		YearlyStatsTable,
	}
)

func init() {
	BloodBagsTable.ForeignKeys[0].RefTable = BiologistsTable
	ComponentsTable.ForeignKeys[0].RefTable = BloodBagsTable
	DistributionsTable.ForeignKeys[0].RefTable = BloodBagsTable
}
