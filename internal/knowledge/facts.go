// Package knowledge serves office facts to the conversation layer: hours,
// policies, providers, services, pricing, and insurance answers.
package knowledge

// Facts is the static corpus seeded at startup. Order matters: when no
// keyword matches, the first five facts are returned as a generic context.
var Facts = []string{
	"Avalon Dental Christiana is located at 430 Christiana Medical Center, Newark, DE 19702. Phone: 302-292-8899. Hours: Monday-Thursday 7:30 AM - 6:30 PM. Closed Friday-Sunday.",
	"Avalon Dental Newport is located at 406 Larch Circle, Newport, DE 19804. Phone: 302-999-8822. Hours: Monday-Thursday 8:00 AM - 5:00 PM. Closed Friday-Sunday.",
	"Contact Avalon Dental by phone at 302-292-8899, text at 302-300-4614 (preferred), or email at avalondentalde@gmail.com.",
	"For dental emergencies, call the office directly. After-hours emergencies should call the main line for the on-call doctor's contact information.",
	"Avalon Dental requires 2 days (48 hours) notice for cancellations. This helps us offer the time slot to other patients and maintains your eligibility for the Rewards Program.",
	"Late cancellations or no-shows may result in a $50 fee and could affect rewards program eligibility.",
	"The Avalon Dental Savings Plan costs $60 to enroll. Benefits include: Exam, Cleaning and X-rays for $175, 15% off all dental services, no waiting periods, no annual maximums, and priority scheduling.",
	"The savings plan is ideal for patients without dental insurance or those wanting additional coverage beyond their insurance benefits.",
	"Dr. Parham Farhi (DDS) is the founder of Avalon Dental. He specializes in Cosmetic Dentistry, Root Canals, Implant Placement, and Braces/Orthodontics. He graduated from Baltimore College of Dental Surgery in 2002 and has over 20 years of experience. He is passionate about creating beautiful smiles and making dental visits comfortable.",
	"Dr. Adeline Farhi (DDS) specializes in General Dentistry, Cosmetic Dentistry, and Children's Dentistry. She graduated from Temple University Dental School in 2015. She is known for her gentle approach and expertise in pediatric care.",
	"Dr. James Wilson (DMD) specializes in Oral Surgery, Wisdom Teeth Extraction, and Implant Surgery. He graduated from University of Pennsylvania Dental School in 2010 and handles complex surgical cases.",
	"Lisa Thompson (RDH) is a Dental Hygienist specializing in Cleanings, Periodontal Care, and Patient Education. She has been with Avalon Dental since 2018 and is known for making cleanings comfortable.",
	"Cleaning: Routine cleaning for patients with healthy gums. Includes plaque removal, polishing, and flossing. Duration: 45 minutes. Cost: $100-$150.",
	"New Patient Exam: Comprehensive exam including full mouth X-rays, oral cancer screening, and treatment planning. Duration: 60 minutes. Cost: $150-$200. Includes discussion of findings and personalized care plan.",
	"Deep Cleaning (Scaling and Root Planing): Treatment for gum disease involving cleaning below the gumline. Duration: 90 minutes. Cost: $200-$400 per quadrant. May require multiple visits.",
	"Filling: Tooth-colored composite filling to repair cavities. Duration: 45 minutes. Cost: $150-$300 per tooth.",
	"Crown: Full coverage restoration for damaged teeth. Custom-made ceramic or porcelain crown. Duration: 90 minutes (2 visits). Cost: $900-$1400. First visit for prep and impressions, second for placement.",
	"Root Canal: Treatment to save infected or damaged tooth by removing infected pulp. Duration: 90 minutes. Cost: $700-$1200. Crown recommended after procedure.",
	"Dental Bridge: Fixed replacement for one or more missing teeth anchored to adjacent teeth. Duration: 90 minutes (2 visits). Cost: $2000-$4000.",
	"Teeth Whitening: Professional in-office teeth whitening treatment. Duration: 60 minutes. Cost: $300-$500. Results typically 6-8 shades whiter.",
	"Veneers: Thin porcelain shells bonded to front teeth for cosmetic improvement. Duration: 90 minutes (2 visits). Cost: $800-$1500 per tooth.",
	"Bonding: Cosmetic repair using tooth-colored resin for chips, gaps, or discoloration. Duration: 45 minutes. Cost: $200-$400 per tooth.",
	"Extraction: Simple tooth removal for damaged or problematic teeth. Duration: 30 minutes. Cost: $150-$300. Complex extractions may cost more.",
	"Wisdom Teeth Extraction: Surgical removal of wisdom teeth. Duration: 60-90 minutes. Cost: $300-$600 per tooth. Sedation available.",
	"Dental Implant Placement: Surgical placement of titanium implant fixture to replace missing tooth. Duration: 90 minutes. Cost: $1500-$2500. Abutment and crown separate.",
	"Braces Consultation: Evaluation for braces or clear aligners. Duration: 45 minutes. Cost: Free. Complimentary consultation includes X-rays and treatment options.",
	"Traditional Braces: Metal or ceramic braces for teeth alignment. Duration varies (12-24 months). Cost: $3000-$6000. Monthly adjustment visits included.",
	"Clear Aligners (Invisalign): Invisible aligners for teeth straightening. Duration varies (6-18 months). Cost: $3500-$7000.",
	"Emergency Visit: Same-day treatment for dental emergencies including pain, swelling, or trauma. Duration: 30 minutes. Cost: $100-$200 exam fee plus treatment.",
	"Night Guard: Custom-fitted guard for teeth grinding (bruxism). Duration: 30 minutes (2 visits). Cost: $300-$500.",
	"Dentures: Full or partial removable dentures. Duration: Multiple visits. Cost: $1000-$3000.",
	"We accept most major dental insurance plans including Delta Dental, Cigna, MetLife, Aetna, Guardian, United Healthcare, and many others. We also accept Medicaid for children's dental services.",
	"If we don't accept your insurance, we can still see you! We offer our Savings Plan and competitive self-pay rates. We'll provide a superbill for you to submit for potential reimbursement.",
	"New patients should arrive 15 minutes early to complete paperwork. Bring your insurance card, ID, and list of current medications.",
	"We offer early morning appointments starting at 7:30 AM at Christiana for patients who need to get to work.",
	"We try to accommodate same-day emergency appointments. Call as early as possible and we'll do our best to fit you in.",
	"We accept cash, all major credit cards (Visa, MasterCard, Amex, Discover), CareCredit, and personal checks.",
	"We offer CareCredit financing with 0% interest options for 6-12 months on treatments over $500.",
	"Payment is due at time of service. For extensive treatment plans, we can discuss payment arrangements.",
	"We recommend dental checkups and cleanings every 6 months for most patients. Some patients with gum disease may need more frequent visits.",
	"Yes, we see patients of all ages including children! Dr. Adeline specializes in pediatric care and is great with kids.",
	"We offer sedation options including nitrous oxide (laughing gas) and oral sedation for anxious patients.",
	"X-rays are taken based on individual needs. New patients typically need a full set, then bitewings annually. We use digital X-rays which have 80% less radiation than traditional X-rays.",
}
