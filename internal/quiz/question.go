package quiz

// Question is a single quiz item. Answer is the zero-based index into
// Options. Questions are immutable and drawn from the fixed bank.
type Question struct {
	Text        string
	Options     []string
	Answer      int
	Explanation string
}

// Bank returns the master question bank. Callers receive a fresh slice and
// may reorder it freely.
func Bank() []Question {
	out := make([]Question, len(masterBank))
	copy(out, masterBank)
	return out
}

var masterBank = []Question{
	{
		Text:        "What is the most important factor for a strong password?",
		Options:     []string{"Length", "Complexity (using !@#$)", "Using your pet's name"},
		Answer:      0,
		Explanation: "Length is the single most important factor. A long passphrase is much harder to crack than a short, complex one.",
	},
	{
		Text:        "A 'password manager' is a type of malware.",
		Options:     []string{"True", "False"},
		Answer:      1,
		Explanation: "False. A password manager is a secure tool that helps you create and store unique, strong passwords for all your accounts.",
	},
	{
		Text:        "Which method of 2FA is generally considered the most secure?",
		Options:     []string{"SMS (text message)", "Authenticator App", "Hardware Security Key"},
		Answer:      2,
		Explanation: "Hardware keys are the gold standard as they are immune to phishing. Authenticator apps are a strong second choice.",
	},
	{
		Text:        "What is 'Biometric' authentication?",
		Options:     []string{"Using your location to log in", "Using a physical characteristic like a fingerprint or face", "Using a password you've memorized"},
		Answer:      1,
		Explanation: "Biometrics use something you 'are' (like a fingerprint) to verify your identity. It's often used to unlock phones and laptops.",
	},
	{
		Text:        "What type of malware disguises itself as a legitimate program?",
		Options:     []string{"Virus", "Worm", "Trojan"},
		Answer:      2,
		Explanation: "A Trojan Horse tricks you into installing it by pretending to be a useful piece of software, like a game or utility.",
	},
	{
		Text:        "Ransomware's primary goal is to:",
		Options:     []string{"Steal your passwords", "Encrypt your files and demand payment", "Slow down your computer"},
		Answer:      1,
		Explanation: "Ransomware holds your data hostage by encrypting it and demands a ransom for its release.",
	},
	{
		Text:        "The best defense against ransomware is:",
		Options:     []string{"A strong firewall", "Regular, offline backups", "A fast internet connection"},
		Answer:      1,
		Explanation: "If you have backups, you can restore your files without paying the ransom, rendering the attack useless.",
	},
	{
		Text:        "A 'keylogger' is a type of spyware that records your...",
		Options:     []string{"Screen", "Keystrokes", "Webcam"},
		Answer:      1,
		Explanation: "Keyloggers capture everything you type, including passwords and private messages, making them extremely dangerous.",
	},
	{
		Text:        "A 'zero-day' vulnerability is:",
		Options:     []string{"A security flaw with zero impact", "A flaw exploited by hackers before the developer has a patch for it", "A flaw found on the first day a program is released"},
		Answer:      1,
		Explanation: "It's called a 'zero-day' because the developers have had zero days to fix it, making it extremely dangerous.",
	},
	{
		Text:        "You receive an email from your bank asking you to click a link to verify your account. What should you do?",
		Options:     []string{"Click the link and log in", "Ignore the email", "Open your browser and manually type your bank's website address to log in"},
		Answer:      2,
		Explanation: "Never click links in unexpected emails. Go directly to the official website to verify any account issues.",
	},
	{
		Text:        "'Smishing' is a type of phishing attack conducted via:",
		Options:     []string{"Email", "Phone Call", "SMS (Text Message)"},
		Answer:      2,
		Explanation: "Smishing combines 'SMS' and 'phishing'. It's a very common way for scammers to send malicious links.",
	},
	{
		Text:        "A phishing email will often create a sense of...",
		Options:     []string{"Calm and patience", "Urgency and fear", "Curiosity and excitement"},
		Answer:      1,
		Explanation: "Scammers want you to panic and act without thinking, so they use urgent language like 'account suspended' or 'act now'.",
	},
	{
		Text:        "What is 'social engineering'?",
		Options:     []string{"A type of coding language", "Manipulating people to give up confidential information", "A social media marketing technique"},
		Answer:      1,
		Explanation: "Social engineering is the art of psychological manipulation. Phishing is a common form of it.",
	},
	{
		Text:        "An attacker calls you pretending to be from tech support and asks for remote access to your computer. This is an example of:",
		Options:     []string{"Vishing", "A Denial-of-Service attack", "Ransomware"},
		Answer:      0,
		Explanation: "Vishing (Voice Phishing) uses phone calls to trick people into giving up access or information.",
	},
	{
		Text:        "A VPN (Virtual Private Network) will:",
		Options:     []string{"Make your internet faster", "Encrypt your internet traffic", "Block all viruses"},
		Answer:      1,
		Explanation: "A VPN's main purpose is to create a secure, encrypted tunnel for your data, protecting your privacy from eavesdroppers.",
	},
	{
		Text:        "Is it safe to do online banking on public Wi-Fi without a VPN?",
		Options:     []string{"Yes, if the website is HTTPS", "No, it's never safe", "Only if the Wi-Fi has a password"},
		Answer:      1,
		Explanation: "No. An attacker on the same network can intercept your data. Always use a VPN on public networks for sensitive tasks.",
	},
	{
		Text:        "What does a firewall primarily do?",
		Options:     []string{"Scans for viruses", "Monitors and filters network traffic", "Backs up your files"},
		Answer:      1,
		Explanation: "A firewall acts as a barrier, controlling what traffic is allowed into or out of your network based on security rules.",
	},
	{
		Text:        "The padlock icon in your browser's address bar signifies what?",
		Options:     []string{"The website is safe from malware", "The website is owned by a trusted company", "Your connection to the website is encrypted (HTTPS)"},
		Answer:      2,
		Explanation: "The padlock means your connection is encrypted, preventing eavesdropping. It does not guarantee the site itself is trustworthy.",
	},
	{
		Text:        "The most secure Wi-Fi encryption standard is:",
		Options:     []string{"WEP", "WPA2", "WPA3"},
		Answer:      2,
		Explanation: "WPA3 is the latest and most secure standard. WEP is ancient and completely insecure.",
	},
	{
		Text:        "Keeping your software updated is a critical security practice.",
		Options:     []string{"True", "False"},
		Answer:      0,
		Explanation: "Updates often contain patches for security vulnerabilities that attackers can exploit. It's one of the easiest and most important security habits.",
	},
	{
		Text:        "You find a USB stick on the ground. What should you do?",
		Options:     []string{"Plug it into your computer to find the owner", "Plug it into an isolated, non-critical computer", "Destroy it or turn it in to a lost and found without plugging it in"},
		Answer:      2,
		Explanation: "Never plug in unknown USB drives. They can be loaded with malware designed to automatically infect any computer they're connected to.",
	},
	{
		Text:        "What is the 'Principle of Least Privilege'?",
		Options:     []string{"Giving a user the minimum levels of access needed to perform their job functions", "Always using the least expensive security software", "Privileging security over user convenience"},
		Answer:      0,
		Explanation: "This principle limits the damage that can result from a compromised account. A user with fewer permissions can do less harm.",
	},
	{
		Text:        "What is a 'data breach'?",
		Options:     []string{"A type of network cable", "An intentional system shutdown", "An incident where sensitive information is stolen or released"},
		Answer:      2,
		Explanation: "In a data breach, confidential data like usernames, passwords, and credit card numbers are exposed to unauthorized individuals.",
	},
	{
		Text:        "You can check if your email has been exposed in a known data breach using which website?",
		Options:     []string{"CanIBeHacked.com", "HaveIBeenPwned.com", "IsMyDataSafe.org"},
		Answer:      1,
		Explanation: "HaveIBeenPwned.com is a reputable, free service that aggregates data from hundreds of breaches, allowing you to check your exposure.",
	},
	{
		Text:        "What does 'end-to-end encryption' (E2EE) mean?",
		Options:     []string{"The data is encrypted only on the sender's device", "The data is encrypted on the server", "Only the sender and intended recipient can read the message"},
		Answer:      2,
		Explanation: "E2EE ensures that no one in between, not even the company providing the service, can decipher the messages.",
	},
	{
		Text:        "Is it safe to share your password with a close friend or family member?",
		Options:     []string{"Yes, if you trust them", "No, passwords should never be shared"},
		Answer:      1,
		Explanation: "Passwords should be treated like toothbrushes: never share them. If someone needs access, use features like guest accounts or family sharing plans.",
	},
	{
		Text:        "What is 'Adware'?",
		Options:     []string{"Software that helps you make advertisements", "Software that automatically displays or downloads unwanted advertising material", "A hardware device for blocking ads"},
		Answer:      1,
		Explanation: "Adware is a type of malware that bombards you with pop-ups and ads, often tracks your browsing habits, and can slow down your computer.",
	},
	{
		Text:        "If you receive a 'friend request' from someone you don't know on social media, you should:",
		Options:     []string{"Accept it to be friendly", "Ignore or delete the request", "Accept it, but restrict their access"},
		Answer:      1,
		Explanation: "Accepting requests from strangers can expose your personal information to scammers or fake accounts. It's safest to only connect with people you know.",
	},
	{
		Text:        "The term 'digital footprint' refers to:",
		Options:     []string{"The size of your hard drive", "The trail of data you leave behind when you use the internet", "The number of devices you own"},
		Answer:      1,
		Explanation: "Your digital footprint includes social media posts, browsing history, and online purchases. It's important to be mindful of what you share.",
	},
	{
		Text:        "A 'Denial-of-Service' (DoS) attack aims to:",
		Options:     []string{"Steal data from a server", "Make a website or service unavailable to legitimate users", "Delete a user's account"},
		Answer:      1,
		Explanation: "A DoS attack floods a server with so much traffic that it becomes overwhelmed and cannot respond to normal requests.",
	},
}
