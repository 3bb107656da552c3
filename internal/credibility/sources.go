package credibility

// Source categories that count as outright fabrication when flagging.
const (
	categoryFakeNews      = "fake-news"
	categoryConspiracy    = "conspiracy"
	categoryImpersonation = "impersonation"
	categoryPropaganda    = "state-propaganda"
	categoryUnknown       = "unknown"
)

type sourceInfo struct {
	score    float64
	category string
	name     string
}

// sourceDatabase maps domains (no www prefix) to credibility records.
// Tier 1 (90-100) peer-reviewed and official organizations, tier 2
// (70-89) reputable news, tier 3 (50-69) mainstream with known bias,
// tier 4 (below 50) known misinformation outlets.
var sourceDatabase = map[string]sourceInfo{
	// Tier 1: peer-reviewed journals.
	"nature.com":      {98, "peer-reviewed", "Nature"},
	"science.org":     {98, "peer-reviewed", "Science"},
	"thelancet.com":   {97, "peer-reviewed", "The Lancet"},
	"nejm.org":        {97, "peer-reviewed", "New England Journal of Medicine"},
	"bmj.com":         {96, "peer-reviewed", "BMJ"},
	"pnas.org":        {96, "peer-reviewed", "PNAS"},
	"cell.com":        {96, "peer-reviewed", "Cell"},
	"jamanetwork.com": {96, "peer-reviewed", "JAMA"},

	// Tier 1: official organizations.
	"who.int":  {97, "official-org", "World Health Organization"},
	"cdc.gov":  {97, "official-org", "CDC"},
	"nih.gov":  {97, "official-org", "National Institutes of Health"},
	"fda.gov":  {96, "official-org", "FDA"},
	"nasa.gov": {98, "official-org", "NASA"},
	"noaa.gov": {97, "official-org", "NOAA"},
	"usgs.gov": {96, "official-org", "USGS"},
	"ipcc.ch":  {96, "official-org", "IPCC"},

	// Tier 1: fact-checkers.
	"snopes.com":     {95, "fact-checker", "Snopes"},
	"factcheck.org":  {95, "fact-checker", "FactCheck.org"},
	"politifact.com": {94, "fact-checker", "PolitiFact"},
	"fullfact.org":   {94, "fact-checker", "Full Fact"},

	// Tier 1: academic institutions.
	"harvard.edu":  {95, "academic", "Harvard University"},
	"mit.edu":      {95, "academic", "MIT"},
	"stanford.edu": {95, "academic", "Stanford University"},
	"ox.ac.uk":     {95, "academic", "Oxford University"},
	"cam.ac.uk":    {95, "academic", "Cambridge University"},

	// Tier 2: wire services and international news.
	"reuters.com":        {85, "wire-service", "Reuters"},
	"apnews.com":         {85, "wire-service", "Associated Press"},
	"afp.com":            {83, "wire-service", "AFP"},
	"bbc.com":            {83, "reputable-news", "BBC"},
	"bbc.co.uk":          {83, "reputable-news", "BBC"},
	"theguardian.com":    {80, "reputable-news", "The Guardian"},
	"economist.com":      {82, "reputable-news", "The Economist"},
	"ft.com":             {82, "reputable-news", "Financial Times"},
	"nytimes.com":        {80, "major-newspaper", "New York Times"},
	"washingtonpost.com": {80, "major-newspaper", "Washington Post"},
	"wsj.com":            {81, "major-newspaper", "Wall Street Journal"},
	"latimes.com":        {78, "major-newspaper", "LA Times"},
	"pbs.org":            {82, "public-broadcasting", "PBS"},
	"npr.org":            {82, "public-broadcasting", "NPR"},
	"ndtv.com":           {78, "reputable-news", "NDTV"},
	"thehindu.com":       {78, "reputable-news", "The Hindu"},
	"indianexpress.com":  {76, "reputable-news", "Indian Express"},
	"hindustantimes.com": {74, "reputable-news", "Hindustan Times"},
	"gov.uk":             {85, "government", "UK Government"},
	"usa.gov":            {85, "government", "US Government"},
	"europa.eu":          {84, "government", "European Union"},
	"un.org":             {88, "international-org", "United Nations"},
	"worldbank.org":      {85, "international-org", "World Bank"},
	"imf.org":            {85, "international-org", "IMF"},

	// Tier 3: mainstream with known bias.
	"cnn.com":           {65, "cable-news", "CNN"},
	"foxnews.com":       {60, "cable-news", "Fox News"},
	"msnbc.com":         {62, "cable-news", "MSNBC"},
	"cbsnews.com":       {68, "cable-news", "CBS News"},
	"abcnews.go.com":    {68, "cable-news", "ABC News"},
	"nbcnews.com":       {68, "cable-news", "NBC News"},
	"dailymail.co.uk":   {55, "tabloid", "Daily Mail"},
	"nypost.com":        {58, "tabloid", "New York Post"},
	"thesun.co.uk":      {50, "tabloid", "The Sun"},
	"huffpost.com":      {60, "opinion-heavy", "HuffPost"},
	"slate.com":         {62, "opinion-heavy", "Slate"},
	"vox.com":           {63, "opinion-heavy", "Vox"},
	"buzzfeed.com":      {58, "social-media-news", "BuzzFeed"},
	"buzzfeednews.com":  {65, "social-media-news", "BuzzFeed News"},

	// Tier 4: known misinformation outlets.
	"infowars.com":             {10, categoryConspiracy, "InfoWars"},
	"naturalnews.com":          {15, "pseudoscience", "Natural News"},
	"beforeitsnews.com":        {20, categoryFakeNews, "Before Its News"},
	"yournewswire.com":         {10, categoryFakeNews, "YourNewsWire"},
	"newspunch.com":            {10, categoryFakeNews, "NewsPunch"},
	"worldnewsdailyreport.com": {5, "satire-unmarked", "World News Daily Report"},
	"nationalreport.net":       {5, "satire-unmarked", "National Report"},
	"empireherald.com":         {5, categoryFakeNews, "Empire Herald"},
	"dcgazette.com":            {10, categoryFakeNews, "DC Gazette"},
	"usatoday.com.co":          {5, categoryImpersonation, "Fake USA Today"},
	"breitbart.com":            {35, "extreme-bias", "Breitbart"},
	"dailystormer.com":         {5, "hate-site", "Daily Stormer"},
	"rt.com":                   {40, categoryPropaganda, "RT (Russia Today)"},
	"sputniknews.com":          {40, categoryPropaganda, "Sputnik News"},
	"presstv.ir":               {35, categoryPropaganda, "Press TV"},
	"collective-evolution.com": {25, "pseudoscience", "Collective Evolution"},
	"theepochtimes.com":        {30, "extreme-bias", "The Epoch Times"},
	"oann.com":                 {35, "extreme-bias", "OAN"},
}
