package claimdb

import "regexp"

// Claim verdicts used by the offline database.
const (
	VerdictFalse       = "FALSE"
	VerdictLikelyFalse = "LIKELY_FALSE"
	VerdictMisleading  = "MISLEADING"
	VerdictUnproven    = "UNPROVEN"
	VerdictDisputed    = "DISPUTED"
	VerdictOutdated    = "OUTDATED"
)

type entry struct {
	verdict     string
	source      string
	explanation string
}

// knownFalseClaims maps lowercase keyword phrases to fact-check entries.
// A text matches an entry when it contains the phrase verbatim or contains
// every keyword of the phrase somewhere in the text.
var knownFalseClaims = map[string]entry{
	// Health and COVID-19.
	"bill gates microchip": {VerdictFalse, "Snopes, Reuters, FactCheck.org",
		"No evidence Bill Gates is implanting microchips through vaccines"},
	"vaccines cause autism": {VerdictFalse, "CDC, WHO, Lancet retraction",
		"Numerous studies debunk vaccine-autism link; original study was fraudulent"},
	"5g causes coronavirus": {VerdictFalse, "WHO, BBC, FullFact",
		"No scientific link between 5G and COVID-19; virus spread in areas without 5G"},
	"covid vaccine changes dna": {VerdictFalse, "CDC, Nature",
		"mRNA vaccines don't alter DNA; they work in cytoplasm, not nucleus"},
	"drinking bleach cure": {VerdictFalse, "FDA, CDC",
		"Bleach is toxic and can cause severe harm or death"},
	"ivermectin cures covid": {VerdictUnproven, "FDA, WHO",
		"No conclusive evidence; FDA warns against using animal ivermectin"},
	"masks cause hypoxia": {VerdictFalse, "Mayo Clinic, WHO",
		"Masks do not reduce oxygen levels; safe for most people"},
	"covid created in lab": {VerdictUnproven, "WHO, Scientific studies",
		"No conclusive evidence; most scientists believe natural origin"},
	"covid vaccine magnetize": {VerdictFalse, "CDC, Reuters",
		"Vaccines contain no magnetic materials"},
	"covid vaccine infertility": {VerdictFalse, "ACOG, CDC, Studies",
		"No evidence vaccines affect fertility"},
	"hydroxychloroquine cure covid": {VerdictFalse, "FDA, WHO studies",
		"Studies show no benefit; can cause heart problems"},
	"covid just flu": {VerdictFalse, "WHO, CDC data",
		"COVID-19 more contagious and deadly than flu"},
	"vaccinated shed virus": {VerdictFalse, "CDC, Medical consensus",
		"mRNA vaccines don't contain live virus; can't shed"},
	"plandemic conspiracy": {VerdictFalse, "WHO, Medical experts",
		"Natural pandemic; no evidence of planned conspiracy"},
	"graphene oxide vaccine": {VerdictFalse, "Fact-checkers, Vaccine composition",
		"Vaccines don't contain graphene oxide"},
	"covid vaccine untested": {VerdictFalse, "Clinical trials, FDA",
		"Vaccines underwent extensive testing with tens of thousands of participants"},
	"covid vaccine tracks location": {VerdictFalse, "Technology facts",
		"No GPS or tracking devices in vaccines; impossible with injection"},
	"covid survival rate 99%": {VerdictMisleading, "WHO data, Context",
		"Oversimplifies; millions died; long COVID and complications matter"},
	"natural immunity better vaccine": {VerdictMisleading, "CDC, Medical studies",
		"Vaccination provides more consistent protection; getting COVID has risks"},
	"vitamin d prevents covid": {VerdictUnproven, "WHO, Studies ongoing",
		"May help but not a cure or prevention guarantee"},

	// General health.
	"fluoride mind control": {VerdictFalse, "CDC, Dental associations",
		"Fluoride prevents cavities; no mind control properties"},
	"chemtrails poison": {VerdictFalse, "Scientists, EPA",
		"Contrails are water vapor; no chemical spraying program"},
	"microwave ovens cause cancer": {VerdictFalse, "FDA, Cancer research",
		"No evidence properly working microwaves cause cancer"},
	"vitamin c cures cancer": {VerdictFalse, "Cancer research",
		"No evidence vitamin C alone cures cancer"},
	"sugar feeds cancer": {VerdictMisleading, "Cancer research",
		"Oversimplifies; all cells use sugar; not a valid treatment strategy"},
	"alkaline water prevents disease": {VerdictFalse, "Medical consensus",
		"Body regulates pH; drinking alkaline water doesn't change blood pH"},
	"detox cleanses remove toxins": {VerdictFalse, "Medical experts",
		"Liver and kidneys naturally detox; cleanses unnecessary and potentially harmful"},
	"gmo food dangerous": {VerdictFalse, "Scientific consensus, WHO",
		"GMOs safe to eat; no evidence of harm"},
	"wifi causes cancer": {VerdictFalse, "Cancer research, WHO",
		"No evidence non-ionizing radiation from WiFi causes cancer"},
	"essential oils cure": {VerdictMisleading, "FDA, Medical consensus",
		"May have minor benefits but don't cure diseases"},

	// Elections and politics.
	"2020 election stolen": {VerdictFalse, "AP, Reuters, Court rulings",
		"No evidence of widespread fraud; 60+ court cases dismissed"},
	"dominion voting machines rigged": {VerdictFalse, "Audits, Court rulings",
		"No evidence; multiple audits confirmed accuracy"},
	"dead people voted": {VerdictFalse, "Election officials, Fact-checks",
		"Isolated errors, not widespread fraud"},
	"mail ballot fraud massive": {VerdictFalse, "Election data, Studies",
		"Mail voting secure; fraud extremely rare"},
	"obama not born america": {VerdictFalse, "Birth certificate, PolitiFact",
		"Birth certificate verified; born in Hawaii in 1961"},
	"pizzagate": {VerdictFalse, "Snopes, NYTimes investigation",
		"Debunked conspiracy theory; no evidence of criminal activity"},
	"qanon": {VerdictFalse, "FBI, Multiple fact-checkers",
		"Baseless conspiracy theory; no evidence for claims"},
	"soros funds everything": {VerdictFalse, "Fact-checkers",
		"Antisemitic conspiracy theory; exaggerates influence"},
	"more votes than registered": {VerdictFalse, "Official vote counts",
		"False claim; actual counts showed normal turnout"},

	// Climate and environment.
	"climate change hoax": {VerdictFalse, "NASA, NOAA, IPCC",
		"97% of climate scientists agree human activity causes climate change"},
	"volcanoes emit more co2": {VerdictFalse, "USGS, Scientists",
		"Humans emit 100x more CO2 than volcanoes"},
	"climate scientists disagree": {VerdictFalse, "Surveys, Consensus studies",
		"97%+ of climate scientists agree humans cause warming"},
	"sun causing warming": {VerdictFalse, "Solar data, Climate science",
		"Solar activity declining while temps rise; human activity responsible"},
	"renewable energy impossible": {VerdictFalse, "Energy studies",
		"100% renewable feasible; many countries progressing"},

	// Space and science.
	"earth flat": {VerdictFalse, "NASA, Centuries of scientific evidence",
		"Earth is spherical; proven by satellite imagery, physics, circumnavigation"},
	"moon landing fake": {VerdictFalse, "NASA, Independent verification",
		"Moon landing verified by independent sources, samples, retroreflectors"},
	"nibiru planet x": {VerdictFalse, "NASA, Astronomers",
		"No such planet; doomsday predictions repeatedly fail"},

	// Historical events.
	"holocaust denial": {VerdictFalse, "Historical records, survivor testimony",
		"Holocaust extensively documented; denying it is rejected by historians"},
	"911 inside job": {VerdictFalse, "9/11 Commission, NIST reports",
		"No credible evidence; conspiracy theories debunked by investigations"},

	// Technology.
	"5g causes cancer": {VerdictFalse, "WHO, Medical research",
		"No evidence 5G radio waves cause cancer"},
	"5g depopulation plan": {VerdictFalse, "No credible evidence",
		"Conspiracy theory; 5G is standard telecommunications technology"},
	"phone radiation brain tumors": {VerdictUnproven, "Long-term studies inconclusive",
		"No conclusive link found in major studies"},

	// Food and nutrition.
	"msg dangerous neurotoxin": {VerdictFalse, "FDA, Studies",
		"MSG safe for most people"},
	"carbs make fat": {VerdictMisleading, "Nutrition science",
		"Excess calories cause weight gain; carbs not inherently fattening"},
	"gluten bad everyone": {VerdictFalse, "Medical consensus",
		"Gluten problematic only for celiac disease and sensitivity; safe for most"},
}

// falseClaimPatterns catches phrasings the keyword table misses.
var falseClaimPatterns = []*regexp.Regexp{
	regexp.MustCompile(`bill\s+gates.*microchip`),
	regexp.MustCompile(`vaccines?.*autism`),
	regexp.MustCompile(`5g.*(?:coronavirus|covid)`),
	regexp.MustCompile(`covid.*vaccine.*dna`),
	regexp.MustCompile(`bleach.*cure`),
	regexp.MustCompile(`ivermectin.*cure.*covid`),
	regexp.MustCompile(`masks?.*(?:hypoxia|oxygen)`),
	regexp.MustCompile(`covid.*created.*lab`),
	regexp.MustCompile(`vaccine.*magnet`),
	regexp.MustCompile(`vaccine.*infertil`),
	regexp.MustCompile(`hydroxychloroquine.*cure`),
	regexp.MustCompile(`vaccinated.*shed`),
	regexp.MustCompile(`plandemic`),
	regexp.MustCompile(`graphene.*oxide.*vaccine`),
	regexp.MustCompile(`election.*(?:stolen|fraud)`),
	regexp.MustCompile(`dominion.*rigg`),
	regexp.MustCompile(`dead\s+people.*vot`),
	regexp.MustCompile(`mail.*ballot.*fraud`),
	regexp.MustCompile(`climate.*hoax`),
	regexp.MustCompile(`earth.*flat`),
	regexp.MustCompile(`moon.*landing.*(?:fake|hoax)`),
	regexp.MustCompile(`chemtrails`),
	regexp.MustCompile(`pizzagate`),
	regexp.MustCompile(`qanon`),
	regexp.MustCompile(`deep\s+state`),
	regexp.MustCompile(`new\s+world\s+order`),
	regexp.MustCompile(`illuminati.*control`),
	regexp.MustCompile(`fluoride.*mind\s+control`),
	regexp.MustCompile(`big\s+pharma.*hiding.*cure`),
}
