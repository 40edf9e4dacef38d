package seeder

// Shared lists for synthetic data generation.

var cities = []string{
	"København", "Aarhus", "Odense", "Aalborg", "Esbjerg", "Randers", "Kolding",
	"Horsens", "Vejle", "Roskilde", "Herning", "Helsingør", "Silkeborg", "Næstved",
	"Fredericia", "Viborg", "Køge", "Holstebro", "Taastrup", "Sønderborg",
}

var streetNames = []string{
	"Hovedgaden", "Kirkegade", "Strandvejen", "Parkvej", "Skovvej", "Bakkevej",
	"Møllevej", "Skovbakken", "Havnevej", "Markvej", "Vejlevej", "Stationsvej",
}

var hospitalTypes = []string{"General", "Regional", "University", "Municipal", "Specialized"}

var firstNames = []string{
	"Lars", "Peter", "Michael", "Jens", "Anders", "Mads", "Henrik", "Thomas",
	"Anna", "Maria", "Karen", "Lise", "Mette", "Susanne", "Camilla", "Julie",
	"Emma", "Sofia", "Ida", "Freja", "Alberte", "Ella", "Olivia", "Clara",
}

var lastNames = []string{
	"Nielsen", "Jensen", "Hansen", "Pedersen", "Andersen", "Christensen",
	"Larsen", "Sørensen", "Rasmussen", "Jørgensen", "Petersen", "Madsen",
	"Kristensen", "Olsen", "Thomsen", "Christiansen", "Poulsen", "Johansen",
}

var genders = []string{"Male", "Female", "Other"}

// MedicationNames is the fixed medication catalog; every run creates exactly one
// medication per name.
var MedicationNames = []string{
	"Ibuprofen", "Paracetamol", "Amoxicillin", "Aspirin", "Metformin",
	"Atorvastatin", "Omeprazole", "Amlodipine", "Levothyroxine", "Albuterol",
	"Metoprolol", "Losartan", "Gabapentin", "Sertraline", "Tramadol",
}

var dosages = []string{"10mg", "20mg", "50mg", "100mg", "200mg", "500mg", "1000mg"}

var diagnosisDescriptions = []string{
	"Hypertension", "Diabetes Type 2", "Common Cold", "Bronchitis", "Pneumonia",
	"Asthma", "Arthritis", "Migraine", "Anxiety", "Depression", "Insomnia",
	"Gastritis", "Urinary Tract Infection", "Sinusitis", "Allergic Rhinitis",
}

var appointmentReasons = []string{
	"Routine checkup", "Follow-up visit", "Emergency consultation",
	"Surgery consultation", "Lab results review", "Medication review",
	"Physical examination", "Specialist referral",
}

var surgeryDescriptions = []string{
	"Appendectomy", "Gallbladder removal", "Hernia repair", "Knee arthroscopy",
	"Cataract surgery", "Tonsillectomy", "Cholecystectomy", "Hysterectomy",
	"Prostatectomy", "Mastectomy", "Coronary bypass", "Hip replacement",
}
