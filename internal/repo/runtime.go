// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/google/uuid"
	"github.com/hemobank/hemobank_backend/internal/repo/biologist"
	"github.com/hemobank/hemobank_backend/internal/repo/bloodbag"
	"github.com/hemobank/hemobank_backend/internal/repo/chefservice"
	"github.com/hemobank/hemobank_backend/internal/repo/component"
	"github.com/hemobank/hemobank_backend/internal/repo/distribution"
	"github.com/hemobank/hemobank_backend/internal/repo/yearlystat"
	"github.com/hemobank/hemobank_backend/internal/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	biologistMixin := schema.Biologist{}.Mixin()
	biologistMixinFields0 := biologistMixin[0].Fields()
	_ = biologistMixinFields0
	biologistMixinFields1 := biologistMixin[1].Fields()
	_ = biologistMixinFields1
	biologistFields := schema.Biologist{}.Fields()
	_ = biologistFields
	// biologistDescCreatedAt is the schema descriptor for created_at field.
	biologistDescCreatedAt := biologistMixinFields1[0].Descriptor()
	// biologist.DefaultCreatedAt holds the default value on creation for the created_at field.
	biologist.DefaultCreatedAt = biologistDescCreatedAt.Default.(func() time.Time)
	// biologistDescUpdatedAt is the schema descriptor for updated_at field.
	biologistDescUpdatedAt := biologistMixinFields1[1].Descriptor()
	// biologist.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	biologist.DefaultUpdatedAt = biologistDescUpdatedAt.Default.(func() time.Time)
	// biologist.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	biologist.UpdateDefaultUpdatedAt = biologistDescUpdatedAt.UpdateDefault.(func() time.Time)
	// biologistDescFirstName is the schema descriptor for first_name field.
	biologistDescFirstName := biologistFields[0].Descriptor()
	// biologist.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	biologist.FirstNameValidator = biologistDescFirstName.Validators[0].(func(string) error)
	// biologistDescLastName is the schema descriptor for last_name field.
	biologistDescLastName := biologistFields[1].Descriptor()
	// biologist.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	biologist.LastNameValidator = biologistDescLastName.Validators[0].(func(string) error)
	// biologistDescUsername is the schema descriptor for username field.
	biologistDescUsername := biologistFields[2].Descriptor()
	// biologist.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	biologist.UsernameValidator = biologistDescUsername.Validators[0].(func(string) error)
	// biologistDescEmail is the schema descriptor for email field.
	biologistDescEmail := biologistFields[3].Descriptor()
	// biologist.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	biologist.EmailValidator = biologistDescEmail.Validators[0].(func(string) error)
	// biologistDescPhoneNumber is the schema descriptor for phone_number field.
	biologistDescPhoneNumber := biologistFields[4].Descriptor()
	// biologist.PhoneNumberValidator is a validator for the "phone_number" field. It is called by the builders before save.
	biologist.PhoneNumberValidator = biologistDescPhoneNumber.Validators[0].(func(string) error)
	// biologistDescID is the schema descriptor for id field.
	biologistDescID := biologistMixinFields0[0].Descriptor()
	// biologist.DefaultID holds the default value on creation for the id field.
	biologist.DefaultID = biologistDescID.Default.(func() uuid.UUID)
	bloodbagMixin := schema.BloodBag{}.Mixin()
	bloodbagMixinFields0 := bloodbagMixin[0].Fields()
	_ = bloodbagMixinFields0
	bloodbagMixinFields1 := bloodbagMixin[1].Fields()
	_ = bloodbagMixinFields1
	bloodbagFields := schema.BloodBag{}.Fields()
	_ = bloodbagFields
	// bloodbagDescCreatedAt is the schema descriptor for created_at field.
	bloodbagDescCreatedAt := bloodbagMixinFields1[0].Descriptor()
	// bloodbag.DefaultCreatedAt holds the default value on creation for the created_at field.
	bloodbag.DefaultCreatedAt = bloodbagDescCreatedAt.Default.(func() time.Time)
	// bloodbagDescUpdatedAt is the schema descriptor for updated_at field.
	bloodbagDescUpdatedAt := bloodbagMixinFields1[1].Descriptor()
	// bloodbag.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	bloodbag.DefaultUpdatedAt = bloodbagDescUpdatedAt.Default.(func() time.Time)
	// bloodbag.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	bloodbag.UpdateDefaultUpdatedAt = bloodbagDescUpdatedAt.UpdateDefault.(func() time.Time)
	// bloodbagDescBagNumber is the schema descriptor for bag_number field.
	bloodbagDescBagNumber := bloodbagFields[0].Descriptor()
	// bloodbag.BagNumberValidator is a validator for the "bag_number" field. It is called by the builders before save.
	bloodbag.BagNumberValidator = bloodbagDescBagNumber.Validators[0].(func(string) error)
	// bloodbagDescBloodGroup is the schema descriptor for blood_group field.
	bloodbagDescBloodGroup := bloodbagFields[1].Descriptor()
	// bloodbag.BloodGroupValidator is a validator for the "blood_group" field. It is called by the builders before save.
	bloodbag.BloodGroupValidator = bloodbagDescBloodGroup.Validators[0].(func(string) error)
	// bloodbagDescDonationID is the schema descriptor for donation_id field.
	bloodbagDescDonationID := bloodbagFields[2].Descriptor()
	// bloodbag.DonationIDValidator is a validator for the "donation_id" field. It is called by the builders before save.
	bloodbag.DonationIDValidator = bloodbagDescDonationID.Validators[0].(func(string) error)
	// bloodbagDescBagType is the schema descriptor for bag_type field.
	bloodbagDescBagType := bloodbagFields[3].Descriptor()
	// bloodbag.BagTypeValidator is a validator for the "bag_type" field. It is called by the builders before save.
	bloodbag.BagTypeValidator = bloodbagDescBagType.Validators[0].(func(string) error)
	// bloodbagDescHbsAg is the schema descriptor for hbs_ag field.
	bloodbagDescHbsAg := bloodbagFields[7].Descriptor()
	// bloodbag.HbsAgValidator is a validator for the "hbs_ag" field. It is called by the builders before save.
	bloodbag.HbsAgValidator = bloodbagDescHbsAg.Validators[0].(func(string) error)
	// bloodbagDescHcv is the schema descriptor for hcv field.
	bloodbagDescHcv := bloodbagFields[8].Descriptor()
	// bloodbag.HcvValidator is a validator for the "hcv" field. It is called by the builders before save.
	bloodbag.HcvValidator = bloodbagDescHcv.Validators[0].(func(string) error)
	// bloodbagDescHiv is the schema descriptor for hiv field.
	bloodbagDescHiv := bloodbagFields[9].Descriptor()
	// bloodbag.HivValidator is a validator for the "hiv" field. It is called by the builders before save.
	bloodbag.HivValidator = bloodbagDescHiv.Validators[0].(func(string) error)
	// bloodbagDescTpha is the schema descriptor for tpha field.
	bloodbagDescTpha := bloodbagFields[10].Descriptor()
	// bloodbag.TphaValidator is a validator for the "tpha" field. It is called by the builders before save.
	bloodbag.TphaValidator = bloodbagDescTpha.Validators[0].(func(string) error)
	// bloodbagDescAntiHtlv is the schema descriptor for anti_htlv field.
	bloodbagDescAntiHtlv := bloodbagFields[11].Descriptor()
	// bloodbag.AntiHtlvValidator is a validator for the "anti_htlv" field. It is called by the builders before save.
	bloodbag.AntiHtlvValidator = bloodbagDescAntiHtlv.Validators[0].(func(string) error)
	// bloodbagDescIsDistributed is the schema descriptor for is_distributed field.
	bloodbagDescIsDistributed := bloodbagFields[12].Descriptor()
	// bloodbag.DefaultIsDistributed holds the default value on creation for the is_distributed field.
	bloodbag.DefaultIsDistributed = bloodbagDescIsDistributed.Default.(bool)
	// bloodbagDescID is the schema descriptor for id field.
	bloodbagDescID := bloodbagMixinFields0[0].Descriptor()
	// bloodbag.DefaultID holds the default value on creation for the id field.
	bloodbag.DefaultID = bloodbagDescID.Default.(func() uuid.UUID)
	chefserviceMixin := schema.ChefService{}.Mixin()
	chefserviceMixinFields0 := chefserviceMixin[0].Fields()
	_ = chefserviceMixinFields0
	chefserviceMixinFields1 := chefserviceMixin[1].Fields()
	_ = chefserviceMixinFields1
	chefserviceFields := schema.ChefService{}.Fields()
	_ = chefserviceFields
	// chefserviceDescCreatedAt is the schema descriptor for created_at field.
	chefserviceDescCreatedAt := chefserviceMixinFields1[0].Descriptor()
	// chefservice.DefaultCreatedAt holds the default value on creation for the created_at field.
	chefservice.DefaultCreatedAt = chefserviceDescCreatedAt.Default.(func() time.Time)
	// chefserviceDescUpdatedAt is the schema descriptor for updated_at field.
	chefserviceDescUpdatedAt := chefserviceMixinFields1[1].Descriptor()
	// chefservice.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	chefservice.DefaultUpdatedAt = chefserviceDescUpdatedAt.Default.(func() time.Time)
	// chefservice.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	chefservice.UpdateDefaultUpdatedAt = chefserviceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// chefserviceDescFirstName is the schema descriptor for first_name field.
	chefserviceDescFirstName := chefserviceFields[0].Descriptor()
	// chefservice.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	chefservice.FirstNameValidator = chefserviceDescFirstName.Validators[0].(func(string) error)
	// chefserviceDescLastName is the schema descriptor for last_name field.
	chefserviceDescLastName := chefserviceFields[1].Descriptor()
	// chefservice.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	chefservice.LastNameValidator = chefserviceDescLastName.Validators[0].(func(string) error)
	// chefserviceDescUsername is the schema descriptor for username field.
	chefserviceDescUsername := chefserviceFields[2].Descriptor()
	// chefservice.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	chefservice.UsernameValidator = chefserviceDescUsername.Validators[0].(func(string) error)
	// chefserviceDescEmail is the schema descriptor for email field.
	chefserviceDescEmail := chefserviceFields[3].Descriptor()
	// chefservice.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	chefservice.EmailValidator = chefserviceDescEmail.Validators[0].(func(string) error)
	// chefserviceDescID is the schema descriptor for id field.
	chefserviceDescID := chefserviceMixinFields0[0].Descriptor()
	// chefservice.DefaultID holds the default value on creation for the id field.
	chefservice.DefaultID = chefserviceDescID.Default.(func() uuid.UUID)
	componentMixin := schema.Component{}.Mixin()
	componentMixinFields0 := componentMixin[0].Fields()
	_ = componentMixinFields0
	componentMixinFields1 := componentMixin[1].Fields()
	_ = componentMixinFields1
	componentFields := schema.Component{}.Fields()
	_ = componentFields
	// componentDescCreatedAt is the schema descriptor for created_at field.
	componentDescCreatedAt := componentMixinFields1[0].Descriptor()
	// component.DefaultCreatedAt holds the default value on creation for the created_at field.
	component.DefaultCreatedAt = componentDescCreatedAt.Default.(func() time.Time)
	// componentDescUpdatedAt is the schema descriptor for updated_at field.
	componentDescUpdatedAt := componentMixinFields1[1].Descriptor()
	// component.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	component.DefaultUpdatedAt = componentDescUpdatedAt.Default.(func() time.Time)
	// component.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	component.UpdateDefaultUpdatedAt = componentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// componentDescIsDistributed is the schema descriptor for is_distributed field.
	componentDescIsDistributed := componentFields[3].Descriptor()
	// component.DefaultIsDistributed holds the default value on creation for the is_distributed field.
	component.DefaultIsDistributed = componentDescIsDistributed.Default.(bool)
	// componentDescID is the schema descriptor for id field.
	componentDescID := componentMixinFields0[0].Descriptor()
	// component.DefaultID holds the default value on creation for the id field.
	component.DefaultID = componentDescID.Default.(func() uuid.UUID)
	distributionMixin := schema.Distribution{}.Mixin()
	distributionMixinFields0 := distributionMixin[0].Fields()
	_ = distributionMixinFields0
	distributionMixinFields1 := distributionMixin[1].Fields()
	_ = distributionMixinFields1
	distributionFields := schema.Distribution{}.Fields()
	_ = distributionFields
	// distributionDescCreatedAt is the schema descriptor for created_at field.
	distributionDescCreatedAt := distributionMixinFields1[0].Descriptor()
	// distribution.DefaultCreatedAt holds the default value on creation for the created_at field.
	distribution.DefaultCreatedAt = distributionDescCreatedAt.Default.(func() time.Time)
	// distributionDescUpdatedAt is the schema descriptor for updated_at field.
	distributionDescUpdatedAt := distributionMixinFields1[1].Descriptor()
	// distribution.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	distribution.DefaultUpdatedAt = distributionDescUpdatedAt.Default.(func() time.Time)
	// distribution.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	distribution.UpdateDefaultUpdatedAt = distributionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// distributionDescDistributionNumber is the schema descriptor for distribution_number field.
	distributionDescDistributionNumber := distributionFields[0].Descriptor()
	// distribution.DistributionNumberValidator is a validator for the "distribution_number" field. It is called by the builders before save.
	distribution.DistributionNumberValidator = distributionDescDistributionNumber.Validators[0].(func(string) error)
	// distributionDescReceiverFirstName is the schema descriptor for receiver_first_name field.
	distributionDescReceiverFirstName := distributionFields[1].Descriptor()
	// distribution.ReceiverFirstNameValidator is a validator for the "receiver_first_name" field. It is called by the builders before save.
	distribution.ReceiverFirstNameValidator = distributionDescReceiverFirstName.Validators[0].(func(string) error)
	// distributionDescReceiverLastName is the schema descriptor for receiver_last_name field.
	distributionDescReceiverLastName := distributionFields[2].Descriptor()
	// distribution.ReceiverLastNameValidator is a validator for the "receiver_last_name" field. It is called by the builders before save.
	distribution.ReceiverLastNameValidator = distributionDescReceiverLastName.Validators[0].(func(string) error)
	// distributionDescReceiverAge is the schema descriptor for receiver_age field.
	distributionDescReceiverAge := distributionFields[3].Descriptor()
	// distribution.ReceiverAgeValidator is a validator for the "receiver_age" field. It is called by the builders before save.
	distribution.ReceiverAgeValidator = distributionDescReceiverAge.Validators[0].(func(int) error)
	// distributionDescReceiverSex is the schema descriptor for receiver_sex field.
	distributionDescReceiverSex := distributionFields[4].Descriptor()
	// distribution.ReceiverSexValidator is a validator for the "receiver_sex" field. It is called by the builders before save.
	distribution.ReceiverSexValidator = distributionDescReceiverSex.Validators[0].(func(string) error)
	// distributionDescEstablishment is the schema descriptor for establishment field.
	distributionDescEstablishment := distributionFields[5].Descriptor()
	// distribution.EstablishmentValidator is a validator for the "establishment" field. It is called by the builders before save.
	distribution.EstablishmentValidator = distributionDescEstablishment.Validators[0].(func(string) error)
	// distributionDescRequestedBloodGroup is the schema descriptor for requested_blood_group field.
	distributionDescRequestedBloodGroup := distributionFields[6].Descriptor()
	// distribution.RequestedBloodGroupValidator is a validator for the "requested_blood_group" field. It is called by the builders before save.
	distribution.RequestedBloodGroupValidator = distributionDescRequestedBloodGroup.Validators[0].(func(string) error)
	// distributionDescNumberOfBags is the schema descriptor for number_of_bags field.
	distributionDescNumberOfBags := distributionFields[7].Descriptor()
	// distribution.NumberOfBagsValidator is a validator for the "number_of_bags" field. It is called by the builders before save.
	distribution.NumberOfBagsValidator = distributionDescNumberOfBags.Validators[0].(func(int) error)
	// distributionDescService is the schema descriptor for service field.
	distributionDescService := distributionFields[8].Descriptor()
	// distribution.ServiceValidator is a validator for the "service" field. It is called by the builders before save.
	distribution.ServiceValidator = distributionDescService.Validators[0].(func(string) error)
	// distributionDescCarrierName is the schema descriptor for carrier_name field.
	distributionDescCarrierName := distributionFields[9].Descriptor()
	// distribution.CarrierNameValidator is a validator for the "carrier_name" field. It is called by the builders before save.
	distribution.CarrierNameValidator = distributionDescCarrierName.Validators[0].(func(string) error)
	// distributionDescDoctorName is the schema descriptor for doctor_name field.
	distributionDescDoctorName := distributionFields[10].Descriptor()
	// distribution.DoctorNameValidator is a validator for the "doctor_name" field. It is called by the builders before save.
	distribution.DoctorNameValidator = distributionDescDoctorName.Validators[0].(func(string) error)
	// distributionDescID is the schema descriptor for id field.
	distributionDescID := distributionMixinFields0[0].Descriptor()
	// distribution.DefaultID holds the default value on creation for the id field.
	distribution.DefaultID = distributionDescID.Default.(func() uuid.UUID)
	yearlystatMixin := schema.YearlyStat{}.Mixin()
	yearlystatMixinFields0 := yearlystatMixin[0].Fields()
	_ = yearlystatMixinFields0
	yearlystatMixinFields1 := yearlystatMixin[1].Fields()
	_ = yearlystatMixinFields1
	yearlystatFields := schema.YearlyStat{}.Fields()
	_ = yearlystatFields
	// yearlystatDescCreatedAt is the schema descriptor for created_at field.
	yearlystatDescCreatedAt := yearlystatMixinFields1[0].Descriptor()
	// yearlystat.DefaultCreatedAt holds the default value on creation for the created_at field.
	yearlystat.DefaultCreatedAt = yearlystatDescCreatedAt.Default.(func() time.Time)
	// yearlystatDescUpdatedAt is the schema descriptor for updated_at field.
	yearlystatDescUpdatedAt := yearlystatMixinFields1[1].Descriptor()
	// yearlystat.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	yearlystat.DefaultUpdatedAt = yearlystatDescUpdatedAt.Default.(func() time.Time)
	// yearlystat.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	yearlystat.UpdateDefaultUpdatedAt = yearlystatDescUpdatedAt.UpdateDefault.(func() time.Time)
	// yearlystatDescYear is the schema descriptor for year field.
	yearlystatDescYear := yearlystatFields[0].Descriptor()
	// yearlystat.YearValidator is a validator for the "year" field. It is called by the builders before save.
	yearlystat.YearValidator = func() func(int) error {
		validators := yearlystatDescYear.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(year int) error {
			for _, fn := range fns {
				if err := fn(year); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// yearlystatDescTotalBags is the schema descriptor for total_bags field.
	yearlystatDescTotalBags := yearlystatFields[1].Descriptor()
	// yearlystat.DefaultTotalBags holds the default value on creation for the total_bags field.
	yearlystat.DefaultTotalBags = yearlystatDescTotalBags.Default.(int)
	// yearlystatDescTotalCps is the schema descriptor for total_cps field.
	yearlystatDescTotalCps := yearlystatFields[2].Descriptor()
	// yearlystat.DefaultTotalCps holds the default value on creation for the total_cps field.
	yearlystat.DefaultTotalCps = yearlystatDescTotalCps.Default.(int)
	// yearlystatDescTotalPfc is the schema descriptor for total_pfc field.
	yearlystatDescTotalPfc := yearlystatFields[3].Descriptor()
	// yearlystat.DefaultTotalPfc holds the default value on creation for the total_pfc field.
	yearlystat.DefaultTotalPfc = yearlystatDescTotalPfc.Default.(int)
	// yearlystatDescTotalCg is the schema descriptor for total_cg field.
	yearlystatDescTotalCg := yearlystatFields[4].Descriptor()
	// yearlystat.DefaultTotalCg holds the default value on creation for the total_cg field.
	yearlystat.DefaultTotalCg = yearlystatDescTotalCg.Default.(int)
	// yearlystatDescTotalExpired is the schema descriptor for total_expired field.
	yearlystatDescTotalExpired := yearlystatFields[5].Descriptor()
	// yearlystat.DefaultTotalExpired holds the default value on creation for the total_expired field.
	yearlystat.DefaultTotalExpired = yearlystatDescTotalExpired.Default.(int)
	// yearlystatDescID is the schema descriptor for id field.
	yearlystatDescID := yearlystatMixinFields0[0].Descriptor()
	// yearlystat.DefaultID holds the default value on creation for the id field.
	yearlystat.DefaultID = yearlystatDescID.Default.(func() uuid.UUID)
}
