package classifier

var gratitudeReplies = []string{
	"You're most welcome! I'm here to help you on your wellness journey. Feel free to ask me anything about Ayurveda.",
	"It's my pleasure to help! Remember, small steps towards wellness make a big difference. How else can I assist you?",
	"Glad I could help! Ayurveda teaches us that healing happens naturally when we align with our body's wisdom. Any other questions?",
	"You're welcome! In Ayurveda, we believe prevention is better than cure. Is there anything else about your health I can guide you with?",
}

var farewellReplies = []string{
	"Take care and stay healthy! Remember to follow your daily routine (Dinacharya) for optimal wellness. Namaste! 🙏",
	"Goodbye! May you have balanced doshas and vibrant health. Feel free to return anytime for wellness guidance! 🌿",
	"Farewell! Keep practicing the Ayurvedic principles we discussed. Wishing you perfect health and happiness! ✨",
	"See you soon! Remember - 'Prevention is better than cure.' Take care of yourself naturally! 🌱",
}

var greetingReplies = []string{
	"Namaste! Welcome to your wellness journey. I'm Nirogya, your Ayurvedic health companion. How can I help you achieve better health naturally today?",
	"Hello and welcome! I'm here to guide you with ancient Ayurvedic wisdom for modern wellness needs. What health concerns can I help you address?",
	"Greetings! It's wonderful to connect with you. As your Ayurvedic assistant, I'm ready to help you discover natural paths to health and vitality. What brings you here today?",
	"Namaste and warm welcome! I'm Nirogya, specializing in holistic wellness through Ayurveda. Whether it's a specific health issue or general wellness advice you seek, I'm here to help!",
}

const howAreYouReply = "Namaste! I'm doing well, thank you for asking. I'm Nirogya, your Ayurvedic wellness assistant. I'm here to help you with natural health solutions, herbal remedies, and lifestyle guidance based on ancient Ayurvedic wisdom. How can I support your wellness journey today?"

const whoAreYouReply = "I'm Nirogya, your dedicated Ayurvedic wellness companion! I specialize in providing guidance on natural healing, herbal remedies, dosha balancing, and holistic wellness practices. Whether you need help with specific health concerns or want to learn about preventive care, I'm here to help with traditional Ayurvedic wisdom."

const capabilitiesReply = "I can help you with:\n\n🌿 **Ayurvedic Health Guidance** - Natural remedies for various conditions\n🧘 **Dosha Analysis** - Understanding your body constitution\n🍃 **Herbal Recommendations** - Traditional medicinal plants and their uses\n🥗 **Dietary Advice** - Foods that heal and nourish\n💆 **Lifestyle Tips** - Daily routines for optimal health\n🧘‍♀️ **Yoga & Pranayama** - Practices for mind-body wellness\n\nWhat aspect of your health would you like to explore today?"

const offTopicReply = "I specialize in Ayurvedic health and wellness guidance. I can help you with natural remedies, herbal treatments, dosha balancing, dietary advice, and lifestyle tips for various health conditions.\n\nPlease ask me about any health concerns, symptoms, or wellness topics you'd like to explore through Ayurveda! 🌿"
