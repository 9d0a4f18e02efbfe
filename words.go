package mnemonic

// Default word banks. The left bank holds adjectives, the right bank holds
// surnames of notable scientists and engineers, in the tradition of container
// runtimes that name instances this way. Both are append-only: entries are
// never removed so that previously generated mnemonics stay representative of
// the banks that produced them.
var defaultLeft = []string{
	"admiring", "adoring", "affectionate", "agitated", "amazing", "angry", "awesome",
	"beautiful", "blissful", "bold", "boring", "brave", "busy", "charming", "clever",
	"cocky", "cool", "compassionate", "competent", "condescending", "confident", "cranky",
	"crazy", "dazzling", "determined", "distracted", "dreamy", "eager", "ecstatic",
	"elastic", "elated", "elegant", "eloquent", "epic", "exciting", "fervent", "festive",
	"flamboyant", "focused", "friendly", "frosty", "funny", "gallant", "gifted", "goofy",
	"gracious", "great", "happy", "hardcore", "heuristic", "hopeful", "hungry",
	"infallible", "inspiring", "interesting", "intelligent", "jolly", "jovial", "keen",
	"kind", "laughing", "loving", "lucid", "magical", "mystifying", "modest", "musing",
	"naughty", "nervous", "nice", "nifty", "nostalgic", "objective", "optimistic",
	"peaceful", "pedantic", "pensive", "practical", "priceless", "quirky", "quizzical",
	"recursing", "relaxed", "reverent", "romantic", "sad", "serene", "sharp", "silly",
	"sleepy", "stoic", "strange", "stupefied", "suspicious", "sweet", "tender", "thirsty",
	"trusting", "unruffled", "upbeat", "vibrant", "vigilant", "vigorous", "wizardly",
	"wonderful", "xenodochial", "youthful", "zealous", "zen",
}

var defaultRight = []string{
	"albattani", "allen", "almeida", "antonelli", "agnesi", "archimedes", "ardinghelli",
	"aryabhata", "austin", "babbage", "banach", "banzai", "bardeen", "bartik", "bassi",
	"beaver", "bell", "benz", "bhabha", "bhaskara", "black", "blackburn", "blackwell",
	"bohr", "booth", "borg", "bose", "bouman", "boyd", "brahmagupta", "brattain", "brown",
	"buck", "burnell", "cannon", "carson", "cartwright", "cerf", "chandrasekhar",
	"chaplygin", "chatelet", "chatterjee", "chebyshev", "cohen", "chaum", "clarke",
	"colden", "cori", "cray", "curran", "curie", "darwin", "davinci", "dewdney", "dhawan",
	"diffie", "dijkstra", "dirac", "driscoll", "dubinsky", "easley", "edison", "einstein",
	"elbakyan", "elgamal", "elion", "ellis", "engelbart", "euclid", "euler", "faraday",
	"feistel", "fermat", "fermi", "feynman", "franklin", "gagarin", "galileo", "galois",
	"ganguly", "gates", "gauss", "germain", "goldberg", "goldstine", "goldwasser",
	"golick", "goodall", "gould", "greider", "grothendieck", "haibt", "hamilton",
	"haslett", "hawking", "hellman", "heisenberg", "hermann", "herschel", "hertz",
	"heyrovsky", "hodgkin", "hofstadter", "hoover", "hopper", "hugle", "hypatia",
	"ishizaka", "jackson", "jang", "jennings", "jepsen", "johnson", "joliot", "jones",
	"kalam", "kapitsa", "kare", "keldysh", "keller", "kepler", "khayyam", "khorana",
	"kilby", "kirch", "knuth", "kowalevski", "lalande", "lamarr", "lamport", "leakey",
	"leavitt", "lederberg", "lehmann", "lewin", "lichterman", "liskov", "lovelace",
	"lumiere", "mahavira", "margulis", "matsumoto", "maxwell", "mayer", "mccarthy",
	"mcclintock", "mclaren", "mclean", "mcnulty", "mendel", "mendeleev", "meitner",
	"meninsky", "merkle", "mestorf", "minsky", "mirzakhani", "moore", "morse", "murdock",
	"moser", "napier", "nash", "neumann", "newton", "nightingale", "nobel", "noether",
	"northcutt", "noyce", "panini", "pare", "pascal", "pasteur", "payne", "perlman",
	"pike", "poincare", "poitras", "proskuriakova", "ptolemy", "raman", "ramanujan",
	"ride", "montalcini", "ritchie", "rhodes", "robinson", "roentgen", "rosalind",
	"rubin", "saha", "sammet", "sanderson", "satoshi", "shamir", "shannon", "shaw",
	"shirley", "shockley", "shtern", "sinoussi", "snyder", "solomon", "spence",
	"stallman", "stonebraker", "sutherland", "swanson", "swartz", "swirles", "taussig",
	"tereshkova", "tesla", "tharp", "thompson", "torvalds", "tu", "turing",
	"varahamihira", "vaughan", "visvesvaraya", "volhard", "villani", "wescoff", "wilbur",
	"wiles", "williams", "williamson", "wilson", "wing", "wozniak", "wright", "wu",
	"yalow", "yonath", "zhukovsky",
}

// Minimal preset, kept from the first iteration of the generator. Too small
// for anything beyond demos and tests, but callers that relied on the original
// five-word bank can still reach it through NewMinimal.
var (
	minimalLeft  = []string{"crazy", "amazing"}
	minimalRight = []string{"steve", "alan", "einstein"}
)
