package models

// WardType is the clinical type of a ward
type WardType string

const (
	WardCardiology      WardType = "CARDIOLOGY"
	WardNeurology       WardType = "NEUROLOGY"
	WardOrthopedics     WardType = "ORTHOPEDICS"
	WardPediatrics      WardType = "PEDIATRICS"
	WardOncology        WardType = "ONCOLOGY"
	WardEmergency       WardType = "EMERGENCY"
	WardIntensiveCare   WardType = "INTENSIVE_CARE"
	WardGeneralMedicine WardType = "GENERAL_MEDICINE"
	WardMaternity       WardType = "MATERNITY"
	WardPsychiatry      WardType = "PSYCHIATRY"
)

// WardTypes lists every ward type in declaration order
var WardTypes = []WardType{
	WardCardiology, WardNeurology, WardOrthopedics, WardPediatrics, WardOncology,
	WardEmergency, WardIntensiveCare, WardGeneralMedicine, WardMaternity, WardPsychiatry,
}

func (t WardType) IsValid() bool {
	for _, v := range WardTypes {
		if v == t {
			return true
		}
	}
	return false
}

type DoctorSpeciality string

const (
	DoctorCardiology      DoctorSpeciality = "CARDIOLOGY"
	DoctorNeurology       DoctorSpeciality = "NEUROLOGY"
	DoctorOrthopedics     DoctorSpeciality = "ORTHOPEDICS"
	DoctorPediatrics      DoctorSpeciality = "PEDIATRICS"
	DoctorOncology        DoctorSpeciality = "ONCOLOGY"
	DoctorSurgery         DoctorSpeciality = "SURGERY"
	DoctorRadiology       DoctorSpeciality = "RADIOLOGY"
	DoctorPsychiatry      DoctorSpeciality = "PSYCHIATRY"
	DoctorDermatology     DoctorSpeciality = "DERMATOLOGY"
	DoctorGeneralPractice DoctorSpeciality = "GENERAL_PRACTICE"
)

var DoctorSpecialities = []DoctorSpeciality{
	DoctorCardiology, DoctorNeurology, DoctorOrthopedics, DoctorPediatrics, DoctorOncology,
	DoctorSurgery, DoctorRadiology, DoctorPsychiatry, DoctorDermatology, DoctorGeneralPractice,
}

type NurseSpeciality string

const (
	NurseGeneralCare NurseSpeciality = "GENERAL_CARE"
	NurseICU         NurseSpeciality = "ICU"
	NursePediatric   NurseSpeciality = "PEDIATRIC"
	NurseSurgical    NurseSpeciality = "SURGICAL"
	NurseEmergency   NurseSpeciality = "EMERGENCY"
	NurseOncology    NurseSpeciality = "ONCOLOGY"
	NurseGeriatric   NurseSpeciality = "GERIATRIC"
	NurseMaternity   NurseSpeciality = "MATERNITY"
)

var NurseSpecialities = []NurseSpeciality{
	NurseGeneralCare, NurseICU, NursePediatric, NurseSurgical,
	NurseEmergency, NurseOncology, NurseGeriatric, NurseMaternity,
}

type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "SCHEDULED"
	AppointmentConfirmed AppointmentStatus = "CONFIRMED"
	AppointmentCompleted AppointmentStatus = "COMPLETED"
	AppointmentCancelled AppointmentStatus = "CANCELLED"
	AppointmentNoShow    AppointmentStatus = "NO_SHOW"
)

var AppointmentStatuses = []AppointmentStatus{
	AppointmentScheduled, AppointmentConfirmed, AppointmentCompleted, AppointmentCancelled, AppointmentNoShow,
}

func (s DoctorSpeciality) IsValid() bool {
	for _, v := range DoctorSpecialities {
		if v == s {
			return true
		}
	}
	return false
}

func (s NurseSpeciality) IsValid() bool {
	for _, v := range NurseSpecialities {
		if v == s {
			return true
		}
	}
	return false
}

func (s AppointmentStatus) IsValid() bool {
	for _, v := range AppointmentStatuses {
		if v == s {
			return true
		}
	}
	return false
}
