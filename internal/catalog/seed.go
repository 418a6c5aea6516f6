package catalog

import "github.com/kaseddie/globalpath-agent/internal/types"

// Seed returns the aggregated job catalog the agent ships with. It stands in
// for the external scraper feed; the agent never writes back to it beyond
// attaching generated images.
func Seed() []types.Job {
	return []types.Job{
		{
			ID:              "1",
			Title:           "Warehouse Specialist",
			Company:         "LogiLink GCC",
			Location:        "Dubai, UAE",
			Region:          types.RegionGCC,
			IsVerified:      true,
			Description:     "Looking for physically fit warehouse assistants. Must handle inventory and packing.",
			FullDescription: "We are seeking energetic individuals to join our logistics hub in Jebel Ali. Responsibilities include loading/unloading shipments, operating forklifts (training provided), maintaining stock records, and ensuring safety standards are met. We offer competitive housing allowances and transport.",
			SalaryHint:      "2500 - 3000 AED",
			PostDate:        "2 days ago",
			Site:            types.SiteBayt,
			Type:            types.TypeBlueCollar,
			SubCategory:     "Logistics",
			ContactInfo: &types.ContactInfo{
				Recruiter: "Ahmed Al-Maktoum",
				Email:     "careers.ae@logilink.com",
				Phone:     "+971 4 000 0000",
			},
		},
		{
			ID:              "2",
			Title:           "Senior Software Engineer",
			Company:         "BerlinTech Systems",
			Location:        "Berlin, Germany",
			Region:          types.RegionEurope,
			IsVerified:      true,
			Description:     "React/Node.js expert needed for fintech startup. Relocation assistance provided.",
			FullDescription: "Join our core engineering team to build the future of cross-border payments. You will be responsible for architecting scalable microservices, mentoring junior devs, and implementing secure API layers. Requires 5+ years of JS experience and a degree in CS or equivalent.",
			SalaryHint:      "€70,000 - €90,000",
			PostDate:        "1 day ago",
			Site:            types.SiteIndeed,
			Type:            types.TypeProfessional,
			SubCategory:     "IT",
			ContactInfo: &types.ContactInfo{
				Recruiter: "Sarah Schmidt",
				Email:     "hiring@berlintech.io",
				Phone:     "+49 30 1234567",
			},
		},
		{
			ID:              "3",
			Title:           "Delivery Rider",
			Company:         "QuickDispatch",
			Location:        "Doha, Qatar",
			Region:          types.RegionGCC,
			Description:     "Valid motorcycle license required. Good knowledge of Doha routes.",
			FullDescription: "Fast-paced role for experienced riders. Deliver packages across Doha with efficiency and safety. You will be provided with a company bike, uniform, and medical insurance. Flexible shifts available including nights and weekends.",
			SalaryHint:      "3000 QAR + Benefits",
			PostDate:        "Just now",
			Site:            types.SiteNaukri,
			Type:            types.TypeBlueCollar,
			SubCategory:     "Delivery",
			ContactInfo: &types.ContactInfo{
				Recruiter: "Rajesh Kumar",
				Email:     "hr.qatar@quickdispatch.com",
				Phone:     "+974 4400 0000",
			},
		},
		{
			ID:              "4",
			Title:           "Registered Nurse",
			Company:         "CareFirst Hospital",
			Location:        "London, UK",
			Region:          types.RegionEurope,
			IsVerified:      true,
			Description:     "Seeking qualified nurses for cardiac unit. Tier 2 visa sponsorship available.",
			FullDescription: "Our Cardiac Care Unit is expanding. We need compassionate, registered nurses with specialized experience in heart health. You will manage patient care plans, coordinate with surgical teams, and provide support to families. Full NHS pension and career progression opportunities.",
			SalaryHint:      "£35,000 - £45,000",
			PostDate:        "3 days ago",
			Site:            types.SiteGoogle,
			Type:            types.TypeProfessional,
			SubCategory:     "Healthcare",
			ContactInfo: &types.ContactInfo{
				Recruiter: "Emily Thompson",
				Email:     "recruitment@carefirst-trust.nhs.uk",
				Phone:     "+44 20 7946 0000",
			},
		},
		{
			ID:              "5",
			Title:           "Project Manager (Construction)",
			Company:         "Emirates Builders",
			Location:        "Abu Dhabi, UAE",
			Region:          types.RegionGCC,
			IsVerified:      true,
			Description:     "Lead high-profile skyscraper projects in Abu Dhabi. PMP certification required.",
			FullDescription: "Seeking a seasoned Project Manager with experience in high-rise construction. You will lead a multidisciplinary team, manage stakeholder expectations, and ensure projects are delivered on time and within budget. Experience in the Middle East is highly desirable.",
			SalaryHint:      "25,000 - 35,000 AED",
			PostDate:        "4 days ago",
			Site:            types.SiteBayt,
			Type:            types.TypeProfessional,
			SubCategory:     "Engineering",
			ContactInfo: &types.ContactInfo{
				Recruiter: "Fatima Zayed",
				Email:     "hr@emiratesbuilders.ae",
				Phone:     "+971 2 111 2222",
			},
		},
		{
			ID:              "6",
			Title:           "Live-in Housemaid",
			Company:         "Privat Residence",
			Location:        "Kuwait City, Kuwait",
			Region:          types.RegionGCC,
			Description:     "Seeking reliable housemaid for family home. Accommodation and meals included.",
			FullDescription: "Experienced housemaid needed for a small family. Duties include cleaning, laundry, and assisting with simple meal preparation. We provide a private room, medical insurance, and annual flight tickets.",
			SalaryHint:      "150 - 200 KWD",
			PostDate:        "6 days ago",
			Site:            types.SiteBayt,
			Type:            types.TypeBlueCollar,
			SubCategory:     "Domestic",
			ContactInfo: &types.ContactInfo{
				Recruiter: "Zainab Al-Sabah",
				Email:     "zainab.hr@kuwaithomes.com",
				Phone:     "+965 2200 0000",
			},
		},
		{
			ID:              "7",
			Title:           "Supermarket Cashier",
			Company:         "HyperGlobal",
			Location:        "Riyadh, Saudi Arabia",
			Region:          types.RegionGCC,
			IsVerified:      true,
			Description:     "Customer service role in high-traffic retail environment.",
			FullDescription: "Join our Riyadh branch as a customer service assistant. You will handle transactions, manage stock displays, and assist customers with queries. Good communication skills in English are a plus.",
			SalaryHint:      "3000 - 4000 SAR",
			PostDate:        "1 day ago",
			Site:            types.SiteNaukri,
			Type:            types.TypeBlueCollar,
			SubCategory:     "Retail",
			ContactInfo: &types.ContactInfo{
				Recruiter: "Hassan Al-Soud",
				Email:     "jobs@hyperglobal.sa",
				Phone:     "+966 11 000 0000",
			},
		},
		{
			ID:              "8",
			Title:           "Industrial Welder",
			Company:         "SteelFoundry EU",
			Location:        "Warsaw, Poland",
			Region:          types.RegionEurope,
			Description:     "Certified MIG/TIG welder for manufacturing plant.",
			FullDescription: "Looking for skilled welders with international certifications. You will work on heavy machinery components. Visa sponsorship provided for qualified candidates from abroad.",
			SalaryHint:      "8,000 - 10,000 PLN",
			PostDate:        "4 days ago",
			Site:            types.SiteIndeed,
			Type:            types.TypeBlueCollar,
			SubCategory:     "Trade",
			ContactInfo: &types.ContactInfo{
				Recruiter: "Marek Wisniewski",
				Email:     "rekrutacja@steelfoundry.pl",
				Phone:     "+48 22 123 4567",
			},
		},
		{
			ID:              "9",
			Title:           "Finance Manager",
			Company:         "EuroBank Group",
			Location:        "Paris, France",
			Region:          types.RegionEurope,
			IsVerified:      true,
			Description:     "Oversee regional financial operations for investment bank.",
			FullDescription: "Senior level role managing a team of 10 analysts. Requires CPA/CFA and 10+ years experience in corporate finance. French language skills are an advantage but not mandatory.",
			SalaryHint:      "€85,000 - €110,000",
			PostDate:        "2 days ago",
			Site:            types.SiteGoogle,
			Type:            types.TypeProfessional,
			SubCategory:     "Finance",
			ContactInfo: &types.ContactInfo{
				Recruiter: "Jean Dupont",
				Email:     "hiring@eurobank.fr",
				Phone:     "+33 1 45 67 89 00",
			},
		},
	}
}
