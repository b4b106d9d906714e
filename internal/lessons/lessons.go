package lessons

// Material — дополнительный материал к уроку.
type Material struct {
	Title string
	URL   string
}

// Lesson — статичная запись курса. Контент неизменяемый, загружается
// один раз при старте процесса.
type Lesson struct {
	Title       string
	Text        string
	Materials   []Material
	Homework    string
	HomeworkURL string
	Extra       string
}

// Count — количество уроков в курсе.
func Count() int { return len(course) }

// Get возвращает урок по номеру (нумерация с 1).
func Get(n int) (Lesson, bool) {
	if n < 1 || n > len(course) {
		return Lesson{}, false
	}
	return course[n-1], true
}

var course = []Lesson{
	{
		Title: "Урок 1. Знакомство с пони и правила безопасности",
		Text: "Сегодня знакомимся с обитателями конюшни и учимся правильно себя вести рядом с лошадьми: " +
			"с какой стороны подходить, как держать руки, чего пони боятся и почему нельзя стоять сзади.",
		Materials: []Material{
			{Title: "Видео: первый визит в конюшню", URL: "https://youtu.be/ponyclub-intro"},
			{Title: "Памятка по технике безопасности", URL: "https://ponyclub.example/docs/safety.pdf"},
		},
		Homework:    "Выучите пять правил безопасности из памятки и назовите клички всех пони клуба.",
		HomeworkURL: "https://forms.example/ponyclub/lesson1",
		Extra:       "Если что-то осталось непонятным — задайте вопрос тренеру в чате клуба.",
	},
	{
		Title: "Урок 2. Уход за пони: чистка и амуниция",
		Text: "Разбираем набор для груминга: скребница, щётка, крючок для копыт. Учимся чистить пони до седловки " +
			"и проверять состояние амуниции.",
		Materials: []Material{
			{Title: "Видео: чистка пони шаг за шагом", URL: "https://youtu.be/ponyclub-grooming"},
			{Title: "Схема: части седла и уздечки", URL: "https://ponyclub.example/docs/tack.pdf"},
		},
		Homework:    "Соберите по схеме названия всех частей седла и уздечки.",
		HomeworkURL: "https://forms.example/ponyclub/lesson2",
	},
	{
		Title: "Урок 3. Седловка",
		Text: "Учимся седлать пони: порядок надевания вальтрапа, седла и уздечки, как затянуть подпругу " +
			"и проверить, что всё сидит правильно.",
		Materials: []Material{
			{Title: "Видео: седловка от и до", URL: "https://youtu.be/ponyclub-saddling"},
		},
		Homework:    "Запишите порядок седловки по шагам, как запомнили, и сверьтесь с видео.",
		HomeworkURL: "https://forms.example/ponyclub/lesson3",
	},
	{
		Title: "Урок 4. Посадка и спешивание",
		Text: "Правильная посадка в седло с земли и с подставки, положение корпуса, рук и ног. " +
			"Отрабатываем безопасное спешивание.",
		Materials: []Material{
			{Title: "Видео: посадка всадника", URL: "https://youtu.be/ponyclub-mounting"},
			{Title: "Разбор типичных ошибок посадки", URL: "https://ponyclub.example/docs/seat-errors.pdf"},
		},
		Homework:    "Потренируйте у зеркала положение «плечо — бедро — пятка на одной линии».",
		HomeworkURL: "https://forms.example/ponyclub/lesson4",
	},
	{
		Title: "Урок 5. Движение шагом и остановка",
		Text: "Первые команды в седле: посыл в шаг, остановка, работа повода и шенкеля. " +
			"Учимся чувствовать ритм шага.",
		Materials: []Material{
			{Title: "Видео: первые шаги в манеже", URL: "https://youtu.be/ponyclub-walk"},
		},
		Homework:    "Опишите своими словами, чем посыл отличается от остановки и какие средства управления участвуют.",
		HomeworkURL: "https://forms.example/ponyclub/lesson5",
	},
	{
		Title: "Урок 6. Повороты и вольты",
		Text: "Управление направлением: повороты на шагу, вольт, серпантин. Работа внешнего и внутреннего повода.",
		Materials: []Material{
			{Title: "Видео: повороты и вольты", URL: "https://youtu.be/ponyclub-turns"},
			{Title: "Схемы манежных фигур", URL: "https://ponyclub.example/docs/figures.pdf"},
		},
		Homework:    "Нарисуйте схему серпантина из трёх петель с буквами манежа.",
		HomeworkURL: "https://forms.example/ponyclub/lesson6",
	},
	{
		Title: "Урок 7. Учебная рысь",
		Text: "Переход в рысь, учебная посадка без стремян на корде. Как не терять равновесие и не цепляться за повод.",
		Materials: []Material{
			{Title: "Видео: первая рысь на корде", URL: "https://youtu.be/ponyclub-trot"},
		},
		Homework:    "Упражнение на баланс: 3 подхода планки по 30 секунд ежедневно до следующего урока.",
		HomeworkURL: "https://forms.example/ponyclub/lesson7",
		Extra:       "Рысь — самый сложный аллюр для новичка. Не расстраивайтесь, если не получится сразу.",
	},
	{
		Title: "Урок 8. Строевая рысь",
		Text: "Учимся облегчаться на рыси: ритм «вверх-вниз», работа под нужную ногу, типичные ошибки.",
		Materials: []Material{
			{Title: "Видео: строевая рысь", URL: "https://youtu.be/ponyclub-rising-trot"},
			{Title: "Статья: под какую ногу облегчаться", URL: "https://ponyclub.example/docs/diagonals.pdf"},
		},
		Homework:    "Посмотрите видео и посчитайте, на какую переднюю ногу облегчается всадник.",
		HomeworkURL: "https://forms.example/ponyclub/lesson8",
	},
	{
		Title: "Урок 9. Работа в смене",
		Text: "Езда в группе: дистанция, обгон, разъезд левыми плечами, команды тренера в смене.",
		Materials: []Material{
			{Title: "Видео: правила езды в смене", URL: "https://youtu.be/ponyclub-group"},
		},
		Homework:    "Выучите команды тренера из видео и их значение.",
		HomeworkURL: "https://forms.example/ponyclub/lesson9",
	},
	{
		Title: "Урок 10. Зачётная езда",
		Text: "Итоговое занятие: самостоятельная седловка, езда шагом и рысью со сменой направлений, " +
			"разбор прогресса за курс и рекомендации, куда двигаться дальше.",
		Materials: []Material{
			{Title: "Видео: пример зачётной езды", URL: "https://youtu.be/ponyclub-final"},
			{Title: "Программа продвинутого курса", URL: "https://ponyclub.example/docs/next-course.pdf"},
		},
		Homework:    "Снимите свою зачётную езду на видео и пришлите тренеру.",
		HomeworkURL: "https://forms.example/ponyclub/lesson10",
		Extra:       "Поздравляем с завершением базового курса! Ждём вас на продвинутом.",
	},
}
