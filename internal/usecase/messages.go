package usecase

import (
	"fmt"
	"strings"
)

// Buyer-facing chat texts. FunPay's audience is Russian-speaking; these are
// the exact strings the bot has always sent.
const (
	msgNoNominal = "❌ Ошибка: не удалось определить номинал карты. Укажите в описании: apple_card: <число> <TRY/USD/RUB>."

	msgPending = "⏳ Код ещё в обработке. Попробуйте позже."

	msgRefunded     = "✅ Средства возвращены. Можно оформить заказ повторно позже."
	msgRefundFailed = "❌ Не удалось выполнить автоматический возврат. Свяжитесь с админом."
)

func msgUnsupportedCurrency(currency string) string {
	return fmt.Sprintf("❌ Ошибка: валюта %s не поддерживается.", currency)
}

func msgUnsupportedNominal(nominal int, currency string) string {
	return fmt.Sprintf("❌ Ошибка: неподдерживаемый номинал %d %s.", nominal, currency)
}

func msgDelivered(pins []string, nominal int, currency string, orderID string) string {
	lines := make([]string, 0, len(pins)+4)
	lines = append(lines, "✅ Готово Вот код карты:")
	for i, pin := range pins {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, pin))
	}
	lines = append(lines,
		fmt.Sprintf("✨ Номинал: %d %s", nominal, currency),
		fmt.Sprintf("✨ Заказ #%s Выполнен!", orderID),
		fmt.Sprintf("💬 Пожалуйста подтвердите заказ, и оставте отзыв: https://funpay.com/orders/%s/", orderID),
	)
	return strings.Join(lines, "\n")
}

func msgFailure(reason string, autoRefund bool) string {
	tail := "\n\n⚠️ Авто-возврат выключен. Напишите в чат для возврата."
	if autoRefund {
		tail = "\n\n🔁 Оформляю возврат средств…"
	}
	return "❌ Не удалось Оформить покупку карты.\n" + reason + tail
}
