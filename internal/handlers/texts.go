package handlers

// Подписи кнопок. Триггеры диалогов сопоставляются с текстом
// сообщения побуквенно, поэтому тексты здесь и в клавиатурах общие.
const (
	btnEnterData = "Ввести остатки и продажи"
	btnSubmit    = "Передать данные"
	btnSumsNow   = "Суммы сейчас"
	btnOtherDate = "Другая дата"
	btnBack      = "⏪ Вернуться назад"
)

const (
	msgAskRemainings = "Укажите текущие остатки:"
	msgAskSales      = "Укажите текущие продажи:"
	msgBadNumber     = "Введите корректную сумму (только число)!"
	msgAskDate       = "Укажите дату в формате: день.месяц.год час:минута"
	msgBadDate       = "Введите корректную дату в формате: день.месяц.год час:минута (01.01.2025 13:37)!"
	msgGoingBack     = " Возвращаемся назад . . ."
	msgSubmitted     = "Данные переданы!\n➖➖➖➖➖➖\n"
	msgFailure       = "Не получилось обработать запрос, попробуйте ещё раз."
)
