package view

type Card struct {
	Title       string
	Description string
}

type FAQ struct {
	Question string
	Answer   string
}

var HomeFeatures = []Card{
	{"Location-Based Matching", "Find jobs near you with our advanced location-based search and filtering system."},
	{"Flexible Hours", "Work on your schedule with hourly and daily job opportunities that fit your lifestyle."},
	{"Trust & Safety", "Verified profiles, secure payments, and comprehensive rating system for peace of mind."},
	{"Fair Pricing", "Transparent pricing with only 5% commission. Keep more of what you earn."},
}

var JobSeekerSteps = []Card{
	{"Sign Up & Create Profile", "Register for free and build your professional profile. Add your skills, experience, availability, and location to attract the right opportunities."},
	{"Browse & Filter Jobs", "Search local part-time jobs. Use filters to find positions that match your location, schedule, and skill set."},
	{"Apply & Connect", "Submit applications with one click and hear back from employers directly."},
	{"Work & Get Paid", "Complete the job, receive ratings, and get paid. Build your reputation with verified reviews."},
}

var EmployerSteps = []Card{
	{"Create Employer Account", "Sign up as a job provider and set up your profile to attract quality candidates."},
	{"Post Job Listings", "Create detailed job postings with requirements, pay rates, and schedules."},
	{"Review & Hire", "Browse applications, review candidate profiles and ratings, then connect with your top choices."},
	{"Manage & Pay", "Track job completion, rate workers, and build a reliable team for future opportunities."},
}

var PlatformBenefits = []Card{
	{"Trust & Safety", "Verified profiles and a comprehensive rating system ensure safe transactions for everyone."},
	{"Fair Pricing", "Only 5% commission on completed jobs. No hidden fees or surprise charges."},
	{"Rating System", "Build your reputation with verified reviews. Quality work leads to better opportunities."},
	{"Flexible Scheduling", "Work on your terms. Choose hourly or daily jobs that fit your availability."},
}

var PricingFAQ = []FAQ{
	{"How does the 5% commission work?", "We charge a 5% commission only on completed jobs. There are no upfront costs or hidden fees."},
	{"When do I pay the commission?", "The commission is deducted when payment is processed after job completion."},
	{"Are there any subscription fees?", "No. LocalWork operates on a commission-only model with no monthly subscriptions or listing fees."},
	{"Can I post unlimited jobs?", "Yes. Post as many jobs as you need or apply to as many positions as you want."},
	{"What if there is a dispute?", "Our support team mediates disputes, backed by the rating system, to ensure fair outcomes."},
}

var SafetyFeatures = []Card{
	{"Verified Profiles", "We validate email addresses and require profile completion before platform access."},
	{"Rating System", "A two-way rating system lets employers and workers rate each other."},
	{"Secure Payments", "Funds are held securely until job completion."},
	{"Dispute Resolution", "A dedicated support team mediates disputes for all parties involved."},
	{"Background Checks", "Optional background checks for employers who want additional verification."},
}

var ContactInfo = []Card{
	{"Email", "support@localwork.com"},
	{"Phone", "+1 (555) 123-4567"},
	{"Office", "123 Main Street, Seattle, WA"},
}
