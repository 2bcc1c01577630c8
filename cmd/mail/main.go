// mail 通过当前配置的邮件通道发送一封示例订单确认邮件，用于上线前检查邮箱凭据
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/ab-jewelery/storefront/backend/internal/config"
	"github.com/ab-jewelery/storefront/backend/internal/domain"
	"github.com/ab-jewelery/storefront/backend/internal/mail"
)

func main() {
	to := flag.String("to", "", "收件人邮箱")
	orderID := flag.String("order", "TEST-ORDER", "示例订单号")
	timeout := flag.Duration("timeout", 30*time.Second, "发送超时时间")
	flag.Parse()

	/**********************************************
	 * 创建 logger
	 **********************************************/
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if *to == "" {
		logger.Error("必须通过 -to 指定收件人")
		os.Exit(2)
	}

	/**********************************************
	 * 读取配置文件
	 **********************************************/
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("无法读取配置文件", slog.String("error", err.Error()))
		os.Exit(1)
	}

	/**********************************************
	 * 创建邮件通道并渲染示例邮件
	 **********************************************/
	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	notifier, err := mail.NewNotifier(ctx, cfg)
	if err != nil {
		logger.Error("无法创建邮件通道", slog.String("error", err.Error()))
		os.Exit(1)
	}

	renderer, err := mail.NewRenderer(cfg.BrandName, cfg.Email.User)
	if err != nil {
		logger.Error("无法解析邮件模板", slog.String("error", err.Error()))
		os.Exit(1)
	}

	payload, err := renderer.Render(&domain.ConfirmationRequest{
		Email:    *to,
		OrderID:  *orderID,
		Provider: "Stripe",
		Items: []domain.OrderItem{
			{Name: "Diamond Necklace", Price: 250},
			{Name: "Platinum Ring", Price: 300},
		},
	})
	if err != nil {
		logger.Error("无法渲染邮件", slog.String("error", err.Error()))
		os.Exit(1)
	}

	/**********************************************
	 * 发送邮件
	 **********************************************/
	if err := notifier.Send(ctx, payload); err != nil {
		logger.Error("邮件发送失败", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("示例邮件已发送", slog.String("to", *to), slog.String("service", cfg.Email.Service))
}
