package hub

import "slices"

// Letter is one alphabet entry.
type Letter struct {
	Char    string `json:"char"`
	Sound   string `json:"sound"`
	Name    string `json:"name"`
	Example string `json:"example"`
}

// Flashcard is one word card.
type Flashcard struct {
	Word          string `json:"word"`
	Pronunciation string `json:"pronunciation"`
	Translation   string `json:"translation"`
	Example       string `json:"example"`
}

// Phrase is one useful sentence.
type Phrase struct {
	Text          string `json:"text"`
	Pronunciation string `json:"pronunciation"`
	Translation   string `json:"translation"`
}

var alphabet = []Letter{
	{Char: "А", Sound: "ah", Name: "a", Example: "автобус (avtobus) - bus"},
	{Char: "Б", Sound: "beh", Name: "be", Example: "банан (banan) - banana"},
	{Char: "В", Sound: "veh", Name: "ve", Example: "вода (voda) - water"},
	{Char: "Г", Sound: "geh", Name: "ge", Example: "город (gorod) - city"},
	{Char: "Д", Sound: "deh", Name: "de", Example: "дом (dom) - house"},
	{Char: "Е", Sound: "yeh", Name: "ye", Example: "есть (yest) - to eat"},
	{Char: "Ё", Sound: "yo", Name: "yo", Example: "ёлка (yolka) - Christmas tree"},
	{Char: "Ж", Sound: "zheh", Name: "zhe", Example: "жизнь (zhizn) - life"},
	{Char: "З", Sound: "zeh", Name: "ze", Example: "зима (zima) - winter"},
	{Char: "И", Sound: "ee", Name: "i", Example: "игра (igra) - game"},
	{Char: "Й", Sound: "ee kratkoye", Name: "i kratkoye", Example: "мой (moy) - my"},
	{Char: "К", Sound: "kah", Name: "ka", Example: "кот (kot) - cat"},
	{Char: "Л", Sound: "el", Name: "el", Example: "лето (leto) - summer"},
	{Char: "М", Sound: "em", Name: "em", Example: "мама (mama) - mom"},
	{Char: "Н", Sound: "en", Name: "en", Example: "нос (nos) - nose"},
	{Char: "О", Sound: "oh", Name: "o", Example: "окно (okno) - window"},
	{Char: "П", Sound: "peh", Name: "pe", Example: "папа (papa) - dad"},
	{Char: "Р", Sound: "er", Name: "er", Example: "рука (ruka) - hand"},
	{Char: "С", Sound: "es", Name: "es", Example: "солнце (solntse) - sun"},
	{Char: "Т", Sound: "teh", Name: "te", Example: "тело (telo) - body"},
	{Char: "У", Sound: "oo", Name: "u", Example: "утро (utro) - morning"},
	{Char: "Ф", Sound: "ef", Name: "ef", Example: "фото (foto) - photo"},
	{Char: "Х", Sound: "khah", Name: "kha", Example: "хлеб (khleb) - bread"},
	{Char: "Ц", Sound: "tseh", Name: "tse", Example: "цвет (tsvet) - color"},
	{Char: "Ч", Sound: "cheh", Name: "che", Example: "час (chas) - hour"},
	{Char: "Ш", Sound: "shah", Name: "sha", Example: "школа (shkola) - school"},
	{Char: "Щ", Sound: "shchah", Name: "shcha", Example: "щека (shcheka) - cheek"},
	{Char: "Ъ", Sound: "tvyordiy znak", Name: "hard sign", Example: "объект (obyekt) - object"},
	{Char: "Ы", Sound: "ih", Name: "yery", Example: "мы (my) - we"},
	{Char: "Ь", Sound: "myagkiy znak", Name: "soft sign", Example: "день (den) - day"},
	{Char: "Э", Sound: "eh", Name: "e", Example: "это (eto) - this"},
	{Char: "Ю", Sound: "yu", Name: "yu", Example: "юг (yug) - south"},
	{Char: "Я", Sound: "ya", Name: "ya", Example: "яблоко (yabloko) - apple"},
}

var flashcards = []Flashcard{
	{Word: "Привет", Pronunciation: "privet", Translation: "Hello", Example: "Привет, как дела? - Hello, how are you?"},
	{Word: "Спасибо", Pronunciation: "spasibo", Translation: "Thank you", Example: "Спасибо за помощь - Thank you for help"},
	{Word: "Пожалуйста", Pronunciation: "pozhaluysta", Translation: "Please/You're welcome", Example: "Пожалуйста, помогите - Please help"},
	{Word: "Извините", Pronunciation: "izvinite", Translation: "Excuse me/Sorry", Example: "Извините, где метро? - Excuse me, where is the metro?"},
	{Word: "Да", Pronunciation: "da", Translation: "Yes", Example: "Да, это правильно - Yes, that's correct"},
	{Word: "Нет", Pronunciation: "net", Translation: "No", Example: "Нет, это неправильно - No, that's wrong"},
	{Word: "Хорошо", Pronunciation: "khorosho", Translation: "Good/Well", Example: "Очень хорошо! - Very good!"},
	{Word: "Плохо", Pronunciation: "plokho", Translation: "Bad", Example: "Это плохо - That's bad"},
	{Word: "Вода", Pronunciation: "voda", Translation: "Water", Example: "Мне нужна вода - I need water"},
	{Word: "Еда", Pronunciation: "yeda", Translation: "Food", Example: "Вкусная еда - Delicious food"},
	{Word: "Дом", Pronunciation: "dom", Translation: "House", Example: "Мой дом большой - My house is big"},
	{Word: "Работа", Pronunciation: "rabota", Translation: "Work", Example: "Я иду на работу - I'm going to work"},
	{Word: "Семья", Pronunciation: "semya", Translation: "Family", Example: "Моя семья - My family"},
	{Word: "Друг", Pronunciation: "drug", Translation: "Friend", Example: "Мой лучший друг - My best friend"},
	{Word: "Время", Pronunciation: "vremya", Translation: "Time", Example: "Сколько времени? - What time is it?"},
	{Word: "Деньги", Pronunciation: "dengi", Translation: "Money", Example: "У меня нет денег - I don't have money"},
	{Word: "Любовь", Pronunciation: "lyubov", Translation: "Love", Example: "Любовь к семье - Love for family"},
	{Word: "Жизнь", Pronunciation: "zhizn", Translation: "Life", Example: "Жизнь прекрасна - Life is beautiful"},
	{Word: "Мир", Pronunciation: "mir", Translation: "World/Peace", Example: "Мир во всём мире - Peace in the world"},
	{Word: "Счастье", Pronunciation: "schastye", Translation: "Happiness", Example: "Большое счастье - Great happiness"},
}

var phrases = []Phrase{
	{Text: "Как дела?", Pronunciation: "kak dela?", Translation: "How are you?"},
	{Text: "Меня зовут...", Pronunciation: "menya zovut...", Translation: "My name is..."},
	{Text: "Сколько это стоит?", Pronunciation: "skolko eto stoit?", Translation: "How much does this cost?"},
	{Text: "Где туалет?", Pronunciation: "gde tualet?", Translation: "Where is the bathroom?"},
	{Text: "Я не понимаю", Pronunciation: "ya ne ponimayu", Translation: "I don't understand"},
	{Text: "Говорите медленнее", Pronunciation: "govorite medlennee", Translation: "Speak slower"},
	{Text: "Помогите мне", Pronunciation: "pomogite mne", Translation: "Help me"},
	{Text: "До свидания", Pronunciation: "do svidaniya", Translation: "Goodbye"},
}

// Alphabet returns the letters.
func Alphabet() []Letter { return slices.Clone(alphabet) }

// Flashcards returns the word deck.
func Flashcards() []Flashcard { return slices.Clone(flashcards) }

// Phrases returns the phrase list.
func Phrases() []Phrase { return slices.Clone(phrases) }

// TotalItems is the number of items that can be mastered.
func TotalItems() int {
	return len(alphabet) + len(flashcards) + len(phrases)
}
